package transfer

type TikTokUploadResponse struct {
	Data  TiktokPublishData `json:"data"`
	Error TiktokError       `json:"error"`
}

type TiktokPublishData struct {
	PublishID string `json:"publish_id"`
}

type TiktokError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	LogID   string `json:"log_id"`
}

type VideoPostInfo struct {
	Title                 string `json:"title"`
	PrivacyLevel          string `json:"privacy_level"`
	DisableDuet           bool   `json:"disable_duet"`
	DisableComment        bool   `json:"disable_comment"`
	DisableStitch         bool   `json:"disable_stitch"`
	VideoCoverTimestampMs int    `json:"video_cover_timestamp_ms"`
	BrandContentToggle    bool   `json:"brand_content_toggle"`
	BrandOrganicToggle    bool   `json:"brand_organic_toggle"`
	IsAIGC                bool   `json:"is_aigc"`
}

type VideoSourceInfo struct {
	Source   string `json:"source"`
	VideoURL string `json:"video_url"`
}

type VideoUploadRequest struct {
	PostInfo   VideoPostInfo   `json:"post_info"`
	SourceInfo VideoSourceInfo `json:"source_info"`
}

type VideoQueryRequest struct {
	Filters VideoQueryFilters `json:"filters"`
}

type VideoQueryFilters struct {
	VideoIDs []string `json:"video_ids"`
}

type VideoQueryResponse struct {
	Data  VideoQueryData `json:"data"`
	Error TiktokError    `json:"error"`
}

type VideoQueryData struct {
	Videos []TiktokVideoInfo `json:"videos"`
}

type TiktokVideoInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CreateTime  int64  `json:"create_time"`
	ShareURL    string `json:"share_url"`
}

type VideoDeleteRequest struct {
	VideoID string `json:"video_id"`
}
