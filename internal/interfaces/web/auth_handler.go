package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/tu-usuario/campo-registros/internal/application/auth"
	"github.com/tu-usuario/campo-registros/internal/application/dto"
	"github.com/tu-usuario/campo-registros/internal/domain"
	"github.com/tu-usuario/campo-registros/pkg/logger"
)

// AuthHandler pantallas de ingreso, salida y setup inicial.
type AuthHandler struct {
	authUC  *auth.AuthUseCase
	setupUC *auth.SetupUseCase
	store   *session.Store
	log     *logger.Logger
}

// NewAuthHandler construye el handler de autenticación.
func NewAuthHandler(authUC *auth.AuthUseCase, setupUC *auth.SetupUseCase, store *session.Store, log *logger.Logger) *AuthHandler {
	return &AuthHandler{authUC: authUC, setupUC: setupUC, store: store, log: log}
}

// Root despacha la raíz: a /menu con sesión, a /login sin ella. El estado de
// setup pendiente lo intercepta antes el SetupGate.
func (h *AuthHandler) Root(c *fiber.Ctx) error {
	if CurrentUser(c) != nil {
		return c.Redirect("/menu", fiber.StatusSeeOther)
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// LoginPage muestra el formulario de ingreso.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	if CurrentUser(c) != nil {
		return c.Redirect("/menu", fiber.StatusSeeOther)
	}
	return c.Render("login", fiber.Map{
		"Flash": takeFlash(c, h.store),
	})
}

// LoginSubmit procesa las credenciales; si fallan se re-renderiza el
// formulario con el email conservado y el aviso inline.
func (h *AuthHandler) LoginSubmit(c *fiber.Ctx) error {
	in := dto.LoginForm{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}
	user, err := h.authUC.Login(in)
	if err != nil {
		msg := "credenciales inválidas"
		if errors.Is(err, domain.ErrAccountInactive) {
			msg = "la cuenta está inactiva"
		} else if !errors.Is(err, domain.ErrBadCredentials) {
			return err
		}
		h.log.Warn().Str("email", in.Email).Msg("ingreso rechazado")
		return c.Render("login", fiber.Map{
			"Error": msg,
			"Email": in.Email,
		})
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return err
	}
	sess.Set(sessionUserKey, user.ID)
	if err := sess.Save(); err != nil {
		return err
	}
	h.log.Info().Str("email", user.Email).Msg("sesión iniciada")
	return c.Redirect("/menu", fiber.StatusSeeOther)
}

// Logout invalida la sesión.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// SetupPage muestra el alta del administrador inicial. Solo se llega acá en
// estado pendiente: el SetupGate redirige en cualquier otro caso.
func (h *AuthHandler) SetupPage(c *fiber.Ctx) error {
	return c.Render("setup", fiber.Map{})
}

// SetupSubmit procesa el alta del administrador.
func (h *AuthHandler) SetupSubmit(c *fiber.Ctx) error {
	in := dto.SetupForm{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		Confirm:  c.FormValue("confirm"),
	}
	if err := h.setupUC.Complete(in); err != nil {
		if msg, ok := domain.IsValidation(err); ok {
			return c.Render("setup", fiber.Map{
				"Error": msg,
				"Email": in.Email,
			})
		}
		if errors.Is(err, domain.ErrSetupDone) {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return err
	}
	h.log.Info().Msg("configuración inicial completada")
	setFlash(c, h.store, "administrador configurado, ya podés ingresar")
	return c.Redirect("/login", fiber.StatusSeeOther)
}
