package handler

import (
	"time"

	"instagram-rest/internal/instagram"
)

// Response payloads expose only the enumerated fields, never the full
// upstream object. Optional URL and timestamp fields serialize as null when
// absent, matching the service's original wire shape.

type userPayload struct {
	Pk             int64   `json:"pk"`
	Username       string  `json:"username"`
	FullName       string  `json:"full_name"`
	Biography      string  `json:"biography"`
	FollowerCount  int     `json:"follower_count"`
	FollowingCount int     `json:"following_count"`
	MediaCount     int     `json:"media_count"`
	IsPrivate      bool    `json:"is_private"`
	IsVerified     bool    `json:"is_verified"`
	ProfilePicURL  *string `json:"profile_pic_url"`
}

type publicUserPayload struct {
	userPayload
	ExternalURL string `json:"external_url"`
	IsBusiness  bool   `json:"is_business"`
}

type mediaItemPayload struct {
	Pk           int64   `json:"pk"`
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	CaptionText  string  `json:"caption_text"`
	LikeCount    int     `json:"like_count"`
	CommentCount int     `json:"comment_count"`
	MediaType    int     `json:"media_type"`
	ThumbnailURL *string `json:"thumbnail_url"`
}

type mediaItemWithTimePayload struct {
	mediaItemPayload
	TakenAt *string `json:"taken_at"`
}

type mediaUserPayload struct {
	Pk            int64   `json:"pk"`
	Username      string  `json:"username"`
	FullName      string  `json:"full_name"`
	ProfilePicURL *string `json:"profile_pic_url"`
}

type mediaDetailPayload struct {
	mediaItemPayload
	VideoURL *string          `json:"video_url"`
	TakenAt  *string          `json:"taken_at"`
	User     mediaUserPayload `json:"user"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func timestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func newUserPayload(u instagram.User) userPayload {
	return userPayload{
		Pk:             u.Pk,
		Username:       u.Username,
		FullName:       u.FullName,
		Biography:      u.Biography,
		FollowerCount:  u.FollowerCount,
		FollowingCount: u.FollowingCount,
		MediaCount:     u.MediaCount,
		IsPrivate:      u.IsPrivate,
		IsVerified:     u.IsVerified,
		ProfilePicURL:  optional(u.ProfilePicURL),
	}
}

func newPublicUserPayload(u instagram.User) publicUserPayload {
	return publicUserPayload{
		userPayload: newUserPayload(u),
		ExternalURL: u.ExternalURL,
		IsBusiness:  u.IsBusiness,
	}
}

func newMediaItemPayload(m instagram.Media) mediaItemPayload {
	return mediaItemPayload{
		Pk:           m.Pk,
		ID:           m.ID,
		Code:         m.Code,
		CaptionText:  m.CaptionText,
		LikeCount:    m.LikeCount,
		CommentCount: m.CommentCount,
		MediaType:    m.MediaType,
		ThumbnailURL: optional(m.ThumbnailURL),
	}
}

func newMediaDetailPayload(m instagram.Media) mediaDetailPayload {
	return mediaDetailPayload{
		mediaItemPayload: newMediaItemPayload(m),
		VideoURL:         optional(m.VideoURL),
		TakenAt:          timestamp(m.TakenAt),
		User: mediaUserPayload{
			Pk:            m.User.Pk,
			Username:      m.User.Username,
			FullName:      m.User.FullName,
			ProfilePicURL: optional(m.User.ProfilePicURL),
		},
	}
}
