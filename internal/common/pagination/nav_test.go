package pagination_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noticeboard/internal/common/pagination"
)

func TestNavToken_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<", pagination.PrevToken().String())
	assert.Equal(t, ">", pagination.NextToken().String())
	assert.Equal(t, "17", pagination.PageToken(17).String())
}

func TestMetadata_JSON(t *testing.T) {
	t.Parallel()

	result, err := pagination.Compute(pagination.Criteria{PageNumber: 15, PageSize: 10}, 250, 10)
	require.NoError(t, err)

	body, err := json.Marshal(pagination.NewMetadata(result, 10))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"total_records": 250,
		"total_pages": 25,
		"current_page": 15,
		"page_size": 10,
		"range_start": 141,
		"range_end": 150,
		"nav": ["<","11","12","13","14","15","16","17","18","19","20",">"]
	}`, string(body))
}

func TestNewResponse_NilDataEncodesEmptyArray(t *testing.T) {
	t.Parallel()

	result, err := pagination.Compute(pagination.Criteria{PageNumber: 1, PageSize: 10}, 0, 10)
	require.NoError(t, err)

	body, err := json.Marshal(pagination.NewResponse[string](nil, pagination.NewMetadata(result, 10)))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"data": [],
		"pagination": {
			"total_records": 0, "total_pages": 0, "current_page": 0, "page_size": 10,
			"range_start": 0, "range_end": 0, "nav": []
		}
	}`, string(body))
}
