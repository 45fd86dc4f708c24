package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionCookie correlates anonymous requests without an account.
const SessionCookie = "cart_session"

// Identity is the visitor that owns cart rows: either an authenticated user or
// an anonymous session. The fields are unexported so "both set" and
// "neither set" states cannot be constructed outside this package; the zero
// value means the visitor has no identity yet.
type Identity struct {
	userID     uint
	sessionKey string
}

// UserIdentity returns the identity of an authenticated user.
func UserIdentity(id uint) Identity {
	return Identity{userID: id}
}

// SessionIdentity returns the identity of an anonymous session.
func SessionIdentity(key string) Identity {
	return Identity{sessionKey: key}
}

func (i Identity) IsUser() bool {
	return i.userID != 0
}

func (i Identity) IsZero() bool {
	return i.userID == 0 && i.sessionKey == ""
}

func (i Identity) UserID() uint {
	return i.userID
}

// CartOwner returns the owner column values for a new cart row.
func (i Identity) CartOwner() (userID uint, sessionKey string) {
	return i.userID, i.sessionKey
}

// Scope narrows a query to rows owned by this identity.
func (i Identity) Scope(db *gorm.DB) *gorm.DB {
	if i.userID != 0 {
		return db.Where("user_id = ?", i.userID)
	}
	return db.Where("user_id = 0 AND session_key = ?", i.sessionKey)
}

// VisitorIdentity resolves the current visitor without side effects: the
// authenticated user when OptionalJWTMiddleware put one in the context,
// otherwise the anonymous session cookie if the browser already has one.
func VisitorIdentity(c *fiber.Ctx) Identity {
	if userID, ok := c.Locals("userId").(uint); ok && userID != 0 {
		return UserIdentity(userID)
	}
	if key := c.Cookies(SessionCookie); key != "" {
		return SessionIdentity(key)
	}
	return Identity{}
}

// EnsureVisitorIdentity resolves the visitor, minting a session key and
// setting the cookie on the first mutating call from an anonymous visitor.
func EnsureVisitorIdentity(c *fiber.Ctx) Identity {
	identity := VisitorIdentity(c)
	if !identity.IsZero() {
		return identity
	}

	key := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    key,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return SessionIdentity(key)
}
