package web

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"

	"github.com/tu-usuario/campo-registros/internal/domain/entity"
	"github.com/tu-usuario/campo-registros/pkg/config"
)

// Claves dentro de la sesión y de c.Locals.
const (
	sessionUserKey  = "user_id"
	sessionFlashKey = "flash"
	localUser       = "current_user"
)

// NewSessionStore crea el almacén de sesiones con cookie httpOnly e ids
// generados con uuid.
func NewSessionStore(cfg config.SessionConfig) *session.Store {
	return session.New(session.Config{
		KeyLookup:      "cookie:" + cfg.CookieName,
		Expiration:     time.Duration(cfg.TTLHours) * time.Hour,
		KeyGenerator:   uuid.NewString,
		CookieHTTPOnly: true,
	})
}

// CurrentUser devuelve el usuario autenticado del request, o nil.
func CurrentUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(localUser).(*entity.User)
	return u
}

// setFlash guarda un aviso de un solo uso en la sesión.
func setFlash(c *fiber.Ctx, store *session.Store, msg string) {
	sess, err := store.Get(c)
	if err != nil {
		return
	}
	sess.Set(sessionFlashKey, msg)
	_ = sess.Save()
}

// takeFlash devuelve y consume el aviso pendiente, si hay.
func takeFlash(c *fiber.Ctx, store *session.Store) string {
	sess, err := store.Get(c)
	if err != nil {
		return ""
	}
	msg, _ := sess.Get(sessionFlashKey).(string)
	if msg != "" {
		sess.Delete(sessionFlashKey)
		_ = sess.Save()
	}
	return msg
}
