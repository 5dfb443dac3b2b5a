// Package goinsta adapts the goinsta library to the gateway's capability
// contract. It is the only package that touches the upstream client; the
// rest of the service depends on instagram.Client.
package goinsta

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	goinsta "github.com/Davincible/goinsta/v3"

	"instagram-rest/internal/instagram"
)

type client struct {
	insta *goinsta.Instagram
}

// New returns an unauthenticated capability client.
func New() instagram.Client {
	return &client{}
}

func (c *client) Login(ctx context.Context, username, password string) error {
	if c.insta != nil {
		// Settings were imported; the saved session carries its own auth.
		return nil
	}
	insta := goinsta.New(username, password)
	if err := insta.Login(); err != nil {
		return wrap("login", err)
	}
	c.insta = insta
	return nil
}

func (c *client) UserID() int64 {
	if c.insta == nil || c.insta.Account == nil {
		return 0
	}
	return c.insta.Account.ID
}

func (c *client) UserIDFromUsername(ctx context.Context, username string) (int64, error) {
	user, err := c.insta.Profiles.ByName(username)
	if err != nil {
		return 0, wrap("user lookup", err)
	}
	return user.ID, nil
}

func (c *client) UserInfo(ctx context.Context, userID int64) (instagram.User, error) {
	user, err := c.insta.Profiles.ByID(userID)
	if err != nil {
		return instagram.User{}, wrap("user info", err)
	}
	return instagram.User{
		Pk:             user.ID,
		Username:       user.Username,
		FullName:       user.FullName,
		Biography:      user.Biography,
		FollowerCount:  int(user.FollowerCount),
		FollowingCount: int(user.FollowingCount),
		MediaCount:     int(user.MediaCount),
		IsPrivate:      user.IsPrivate,
		IsVerified:     user.IsVerified,
		ProfilePicURL:  user.ProfilePicURL,
		ExternalURL:    user.ExternalURL,
		IsBusiness:     user.IsBusiness,
	}, nil
}

func (c *client) UserMedias(ctx context.Context, userID int64, amount int) ([]instagram.Media, error) {
	user, err := c.insta.Profiles.ByID(userID)
	if err != nil {
		return nil, wrap("user feed", err)
	}
	feed := user.Feed()

	medias := make([]instagram.Media, 0, amount)
	for len(medias) < amount && feed.Next() {
		for _, item := range feed.Items {
			medias = append(medias, convertItem(item))
			if len(medias) == amount {
				break
			}
		}
	}
	return medias, nil
}

func (c *client) MediaInfo(ctx context.Context, mediaPK int64) (instagram.Media, error) {
	feed, err := c.insta.GetMedia(mediaPK)
	if err != nil {
		return instagram.Media{}, wrap("media info", err)
	}
	if len(feed.Items) == 0 {
		return instagram.Media{}, fmt.Errorf("media info: media %d not found", mediaPK)
	}
	return convertItem(feed.Items[0]), nil
}

func (c *client) MediaPKFromCode(ctx context.Context, code string) (int64, error) {
	// The upstream helper yields the media id as a decimal string.
	id, err := goinsta.MediaIDFromShortID(code)
	if err != nil {
		return 0, wrap("shortcode lookup", err)
	}
	pk, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("shortcode lookup: unexpected media id %q: %w", id, err)
	}
	return pk, nil
}

func (c *client) PhotoUpload(ctx context.Context, path, caption string) (instagram.Media, error) {
	f, err := os.Open(path)
	if err != nil {
		return instagram.Media{}, fmt.Errorf("photo upload: %w", err)
	}
	defer f.Close()

	item, err := c.insta.Upload(&goinsta.UploadOptions{
		File:    f,
		Caption: caption,
	})
	if err != nil {
		return instagram.Media{}, wrap("photo upload", err)
	}
	return convertItem(item), nil
}

func (c *client) MediaLike(ctx context.Context, mediaID string) (bool, error) {
	feed, err := c.insta.GetMedia(mediaID)
	if err != nil {
		return false, wrap("media like", err)
	}
	if len(feed.Items) == 0 {
		return false, fmt.Errorf("media like: media %s not found", mediaID)
	}
	if err := feed.Items[0].Like(); err != nil {
		return false, wrap("media like", err)
	}
	return true, nil
}

func (c *client) MediaComment(ctx context.Context, mediaID, text string) (instagram.Comment, error) {
	feed, err := c.insta.GetMedia(mediaID)
	if err != nil {
		return instagram.Comment{}, wrap("media comment", err)
	}
	if len(feed.Items) == 0 {
		return instagram.Comment{}, fmt.Errorf("media comment: media %s not found", mediaID)
	}
	if err := feed.Items[0].Comment(text); err != nil {
		return instagram.Comment{}, wrap("media comment", err)
	}
	// The upstream client does not return the created comment object.
	return instagram.Comment{Text: text}, nil
}

func (c *client) LoadSettings(path string) error {
	insta, err := goinsta.Import(path)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	c.insta = insta
	return nil
}

func (c *client) DumpSettings(path string) error {
	if c.insta == nil {
		return fmt.Errorf("dump settings: client not logged in")
	}
	if err := c.insta.Export(path); err != nil {
		return fmt.Errorf("dump settings: %w", err)
	}
	return nil
}

func convertItem(item *goinsta.Item) instagram.Media {
	m := instagram.Media{
		Pk:           item.Pk,
		ID:           itemID(item),
		Code:         item.Code,
		CaptionText:  item.Caption.Text,
		LikeCount:    item.Likes,
		CommentCount: item.CommentCount,
		MediaType:    item.MediaType,
		ThumbnailURL: item.Images.GetBest(),
		User: instagram.MediaUser{
			Pk:            item.User.ID,
			Username:      item.User.Username,
			FullName:      item.User.FullName,
			ProfilePicURL: item.User.ProfilePicURL,
		},
	}
	if item.TakenAt > 0 {
		m.TakenAt = time.Unix(item.TakenAt, 0).UTC()
	}
	if len(item.Videos) > 0 {
		m.VideoURL = item.Videos[0].URL
	}
	return m
}

// itemID flattens the upstream item id, which is typed loosely because
// Instagram returns it as either a string or a number.
func itemID(item *goinsta.Item) string {
	if item.ID == nil {
		return ""
	}
	return fmt.Sprint(item.ID)
}

// wrap translates opaque upstream failures into the gateway's typed errors.
// The upstream error taxonomy is not exported in a matchable form, so this
// falls back to message inspection.
func wrap(op string, err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "login_required") || strings.Contains(msg, "login required"):
		return fmt.Errorf("%s: %w: %v", op, instagram.ErrLoginRequired, err)
	case strings.Contains(msg, "challenge"):
		return fmt.Errorf("%s: %w: %v", op, instagram.ErrChallengeRequired, err)
	case strings.Contains(msg, "please wait"):
		return fmt.Errorf("%s: %w: %v", op, instagram.ErrPleaseWait, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
