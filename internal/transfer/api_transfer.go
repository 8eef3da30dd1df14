package transfer

import "github.com/golang-jwt/jwt/v5"

type CustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

type GenerateRequest struct {
	Theme string `json:"theme"`
	Count int    `json:"count"`
}

type ManualPostRequest struct {
	Idea      string   `json:"idea"`
	Caption   string   `json:"caption"`
	Hashtags  []string `json:"hashtags"`
	VideoPath string   `json:"video_path"`
}

type RemovePostRequest struct {
	ID string `json:"id"`
}
