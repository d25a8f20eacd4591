package analytics

// LanguageUsageRow is one language of the language cross-tab: registry
// metadata joined with user and content counts. Only languages with at least
// one user appear (inner join).
type LanguageUsageRow struct {
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	NativeName      string  `json:"native_name"`
	IsRTL           bool    `json:"is_rtl"`
	UserCount       int64   `json:"user_count"`
	PostsCount      int64   `json:"posts_count"`
	CommentsCount   int64   `json:"comments_count"`
	AvgPostsPerUser float64 `json:"avg_posts_per_user"`
}

// RTLUsageRow groups the user base by script direction. UserShare is the
// percentage of the grouped user total, computed over the returned groups.
type RTLUsageRow struct {
	IsRTL         bool    `json:"is_rtl"`
	LanguageCount int64   `json:"language_count"`
	UserCount     int64   `json:"user_count"`
	PostsCount    int64   `json:"posts_count"`
	CommentsCount int64   `json:"comments_count"`
	UserShare     float64 `json:"user_share"`
}

// TrendPoint is one calendar day of a time-bucketed series. Days without
// activity are not emitted, so the series is sparse.
type TrendPoint struct {
	Date    string `json:"date"`
	Signups int64  `json:"signups"`
}
