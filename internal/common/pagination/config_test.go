package pagination_test

import (
	"testing"

	"noticeboard/internal/common/pagination"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	if config.DefaultPage != 1 {
		t.Errorf("DefaultConfig() DefaultPage = %d, want 1", config.DefaultPage)
	}
	if config.DefaultPageSize != 10 {
		t.Errorf("DefaultConfig() DefaultPageSize = %d, want 10", config.DefaultPageSize)
	}
	if config.MaxPageSize != 100 {
		t.Errorf("DefaultConfig() MaxPageSize = %d, want 100", config.MaxPageSize)
	}
	if config.NavWindowSize != 10 {
		t.Errorf("DefaultConfig() NavWindowSize = %d, want 10", config.NavWindowSize)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("with all env vars set", func(t *testing.T) {
		t.Setenv("PAGINATION_DEFAULT_PAGE", "2")
		t.Setenv("PAGINATION_DEFAULT_SIZE", "30")
		t.Setenv("PAGINATION_MAX_SIZE", "200")
		t.Setenv("PAGINATION_NAV_WINDOW", "5")

		config := pagination.LoadFromEnv(pagination.DefaultConfig())

		want := pagination.Config{DefaultPage: 2, DefaultPageSize: 30, MaxPageSize: 200, NavWindowSize: 5}
		if config != want {
			t.Errorf("LoadFromEnv() = %+v, want %+v", config, want)
		}
	})

	t.Run("with no env vars (fallback to base)", func(t *testing.T) {
		t.Setenv("PAGINATION_DEFAULT_PAGE", "")
		t.Setenv("PAGINATION_DEFAULT_SIZE", "")
		t.Setenv("PAGINATION_MAX_SIZE", "")
		t.Setenv("PAGINATION_NAV_WINDOW", "")

		base := pagination.DefaultConfig()
		if config := pagination.LoadFromEnv(base); config != base {
			t.Errorf("LoadFromEnv() = %+v, want %+v", config, base)
		}
	})

	t.Run("with invalid env vars (fallback to base)", func(t *testing.T) {
		t.Setenv("PAGINATION_DEFAULT_SIZE", "invalid")
		t.Setenv("PAGINATION_NAV_WINDOW", "ten")

		base := pagination.DefaultConfig()
		config := pagination.LoadFromEnv(base)
		if config.DefaultPageSize != base.DefaultPageSize {
			t.Errorf("LoadFromEnv() DefaultPageSize = %d, want %d", config.DefaultPageSize, base.DefaultPageSize)
		}
		if config.NavWindowSize != base.NavWindowSize {
			t.Errorf("LoadFromEnv() NavWindowSize = %d, want %d", config.NavWindowSize, base.NavWindowSize)
		}
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  pagination.Config
		wantErr bool
	}{
		{name: "defaults", config: pagination.DefaultConfig(), wantErr: false},
		{name: "zero page size", config: pagination.Config{DefaultPageSize: 0, MaxPageSize: 10, NavWindowSize: 10}, wantErr: true},
		{name: "max below default", config: pagination.Config{DefaultPageSize: 20, MaxPageSize: 10, NavWindowSize: 10}, wantErr: true},
		{name: "zero nav window", config: pagination.Config{DefaultPageSize: 10, MaxPageSize: 10, NavWindowSize: 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
