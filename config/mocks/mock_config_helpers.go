package mocks

import (
	"time"

	gomock "github.com/golang/mock/gomock"
)

// GetMockedConfig returns a config that serves a single spreadsheet with the default options.
func GetMockedConfig(ctrl *gomock.Controller) *MockConfig {
	config := NewMockConfig(ctrl)
	config.EXPECT().GetString("api_key").Return("test-key").AnyTimes()
	config.EXPECT().GetString("sheets.endpoint").Return("https://sheets.googleapis.com/").AnyTimes()
	config.EXPECT().GetStringSlice("sheets.resources").Return([]string{"sheet-id"}).AnyTimes()
	config.EXPECT().GetStringSlice("sheets.tables").Return([]string{"Sheet1", "Sheet2"}).AnyTimes()
	config.EXPECT().GetBool("sheets.discover").Return(true).AnyTimes()
	config.EXPECT().GetInt("fetch.batch_size").Return(1000).AnyTimes()
	config.EXPECT().GetInt("fetch.max_rows").Return(100000).AnyTimes()
	config.EXPECT().GetDuration("fetch.batch_pause").Return(100 * time.Millisecond).AnyTimes()
	config.EXPECT().GetDuration("fetch.table_pause").Return(200 * time.Millisecond).AnyTimes()
	config.EXPECT().GetInt("retry.max_attempts").Return(3).AnyTimes()
	config.EXPECT().GetDuration("retry.base_delay").Return(time.Second).AnyTimes()
	config.EXPECT().GetDuration("cache.ttl").Return(5 * time.Minute).AnyTimes()
	config.EXPECT().GetBool("search.case_sensitive").Return(false).AnyTimes()
	config.EXPECT().GetInt("search.min_key_length").Return(1).AnyTimes()
	config.EXPECT().GetDuration("http.timeout").Return(30 * time.Second).AnyTimes()
	config.EXPECT().GetString("locale").Return("bn").AnyTimes()
	config.EXPECT().GetBool("verbose").Return(true).AnyTimes()
	return config
}
