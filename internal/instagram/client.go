package instagram

import (
	"context"
	"time"
)

// Client is the Instagram capability used by the gateway. Implementations
// own the protocol work (signing, challenge handling, parsing); the gateway
// only shapes requests and responses around it.
type Client interface {
	// Login authenticates with username/password. If settings were loaded
	// beforehand, the saved session is reused.
	Login(ctx context.Context, username, password string) error

	// UserID returns the numeric id of the authenticated account, or 0 if
	// the client is not logged in.
	UserID() int64

	UserIDFromUsername(ctx context.Context, username string) (int64, error)
	UserInfo(ctx context.Context, userID int64) (User, error)
	UserMedias(ctx context.Context, userID int64, amount int) ([]Media, error)
	MediaInfo(ctx context.Context, mediaPK int64) (Media, error)
	MediaPKFromCode(ctx context.Context, code string) (int64, error)
	PhotoUpload(ctx context.Context, path, caption string) (Media, error)
	MediaLike(ctx context.Context, mediaID string) (bool, error)
	MediaComment(ctx context.Context, mediaID, text string) (Comment, error)

	// LoadSettings restores persisted session state from disk.
	LoadSettings(path string) error
	// DumpSettings persists session state to disk.
	DumpSettings(path string) error
}

// Factory constructs a fresh, unauthenticated client handle.
type Factory func() Client

// User is a read-only projection of an Instagram profile.
type User struct {
	Pk             int64
	Username       string
	FullName       string
	Biography      string
	FollowerCount  int
	FollowingCount int
	MediaCount     int
	IsPrivate      bool
	IsVerified     bool
	ProfilePicURL  string
	ExternalURL    string
	IsBusiness     bool
}

// Media is a read-only projection of a single post.
type Media struct {
	Pk           int64
	ID           string
	Code         string
	CaptionText  string
	LikeCount    int
	CommentCount int
	MediaType    int
	ThumbnailURL string
	VideoURL     string
	TakenAt      time.Time
	User         MediaUser
}

// MediaUser is the author projection embedded in media detail.
type MediaUser struct {
	Pk            int64
	Username      string
	FullName      string
	ProfilePicURL string
}

// Comment is a read-only projection of a posted comment.
type Comment struct {
	Pk   int64
	Text string
}
