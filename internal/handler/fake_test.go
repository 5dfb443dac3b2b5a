package handler

import (
	"context"
	"errors"

	"instagram-rest/internal/instagram"
)

// fakeClient implements instagram.Client with overridable behavior per
// operation. Unset operations fail loudly so tests only exercise what they
// configured.
type fakeClient struct {
	userID int64

	loginFn           func(username, password string) error
	userIDFromNameFn  func(username string) (int64, error)
	userInfoFn        func(userID int64) (instagram.User, error)
	userMediasFn      func(userID int64, amount int) ([]instagram.Media, error)
	mediaInfoFn       func(mediaPK int64) (instagram.Media, error)
	mediaPKFromCodeFn func(code string) (int64, error)
	photoUploadFn     func(path, caption string) (instagram.Media, error)
	mediaLikeFn       func(mediaID string) (bool, error)
	mediaCommentFn    func(mediaID, text string) (instagram.Comment, error)
}

var errNotConfigured = errors.New("fake: operation not configured")

func (f *fakeClient) Login(ctx context.Context, username, password string) error {
	if f.loginFn == nil {
		return nil
	}
	return f.loginFn(username, password)
}

func (f *fakeClient) UserID() int64 { return f.userID }

func (f *fakeClient) UserIDFromUsername(ctx context.Context, username string) (int64, error) {
	if f.userIDFromNameFn == nil {
		return 0, errNotConfigured
	}
	return f.userIDFromNameFn(username)
}

func (f *fakeClient) UserInfo(ctx context.Context, userID int64) (instagram.User, error) {
	if f.userInfoFn == nil {
		return instagram.User{}, errNotConfigured
	}
	return f.userInfoFn(userID)
}

func (f *fakeClient) UserMedias(ctx context.Context, userID int64, amount int) ([]instagram.Media, error) {
	if f.userMediasFn == nil {
		return nil, errNotConfigured
	}
	return f.userMediasFn(userID, amount)
}

func (f *fakeClient) MediaInfo(ctx context.Context, mediaPK int64) (instagram.Media, error) {
	if f.mediaInfoFn == nil {
		return instagram.Media{}, errNotConfigured
	}
	return f.mediaInfoFn(mediaPK)
}

func (f *fakeClient) MediaPKFromCode(ctx context.Context, code string) (int64, error) {
	if f.mediaPKFromCodeFn == nil {
		return 0, errNotConfigured
	}
	return f.mediaPKFromCodeFn(code)
}

func (f *fakeClient) PhotoUpload(ctx context.Context, path, caption string) (instagram.Media, error) {
	if f.photoUploadFn == nil {
		return instagram.Media{}, errNotConfigured
	}
	return f.photoUploadFn(path, caption)
}

func (f *fakeClient) MediaLike(ctx context.Context, mediaID string) (bool, error) {
	if f.mediaLikeFn == nil {
		return false, errNotConfigured
	}
	return f.mediaLikeFn(mediaID)
}

func (f *fakeClient) MediaComment(ctx context.Context, mediaID, text string) (instagram.Comment, error) {
	if f.mediaCommentFn == nil {
		return instagram.Comment{}, errNotConfigured
	}
	return f.mediaCommentFn(mediaID, text)
}

func (f *fakeClient) LoadSettings(path string) error { return nil }

func (f *fakeClient) DumpSettings(path string) error { return nil }
