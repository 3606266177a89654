package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"server/internal/auth"
	"server/internal/domain"
)

type registerRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Zone            string `json:"zone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

type userDTO struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
	Zone     string `json:"zone,omitempty"`
}

var (
	// Email must start with a letter.
	emailPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9._%+-]*@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\d{4}-\d{7}$`)
	specialChar  = regexp.MustCompile(`[^A-Za-z0-9]`)
)

func (r registerRequest) validate() []string {
	var errs []string
	if r.FullName == "" {
		errs = append(errs, "Full name is required.")
	} else if len(r.FullName) < 5 {
		errs = append(errs, "Enter your full name.")
	}
	if r.Email == "" {
		errs = append(errs, "Email is required.")
	} else if !emailPattern.MatchString(r.Email) {
		errs = append(errs, "Email must start with a letter and be valid (e.g. name@example.com).")
	}
	if r.Phone == "" {
		errs = append(errs, "Phone number is required.")
	} else if !phonePattern.MatchString(r.Phone) {
		errs = append(errs, "Phone must be in format xxxx-xxxxxxx (e.g. 0301-2345678).")
	}
	if r.Zone == "" {
		errs = append(errs, "Zone is required.")
	}
	if r.Password == "" {
		errs = append(errs, "Password is required.")
	} else {
		if len(r.Password) < 8 {
			errs = append(errs, "Password must be at least 8 characters long.")
		}
		if !specialChar.MatchString(r.Password) {
			errs = append(errs, "Password must include at least one special character (e.g. @, #, !, %).")
		}
	}
	if r.ConfirmPassword == "" {
		errs = append(errs, "Confirm password is required.")
	} else if r.Password != "" && r.Password != r.ConfirmPassword {
		errs = append(errs, "Password and confirm password do not match.")
	}
	return errs
}

// AuthRegister creates a donor account.
func (a *App) AuthRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.Zone = strings.TrimSpace(req.Zone)

	errs := req.validate()
	if _, err := a.Users.GetByEmail(r.Context(), req.Email); err == nil {
		errs = append(errs, "This email is already registered.")
	} else if !errors.Is(err, domain.ErrNotFound) {
		a.fail(w, err)
		return
	}
	if req.Phone != "" {
		if _, err := a.Users.GetByPhone(r.Context(), req.Phone); err == nil {
			errs = append(errs, "This phone number is already registered.")
		} else if !errors.Is(err, domain.ErrNotFound) {
			a.fail(w, err)
			return
		}
	}
	if len(errs) > 0 {
		a.fail(w, &domain.ValidationError{Msgs: errs})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		a.fail(w, err)
		return
	}
	user := &domain.User{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         domain.UserRoleDonor,
		Zone:         req.Zone,
	}
	if err := a.Users.Create(r.Context(), user); err != nil {
		// The pre-checks race with concurrent registrations; the unique
		// constraints are the backstop.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			a.fail(w, domain.Validationf("this email or phone number is already registered"))
			return
		}
		a.fail(w, err)
		return
	}

	a.json(w, http.StatusCreated, map[string]any{"user": toUserDTO(user)})
}

// AuthLogin authenticates a donor. Admins are directed to the admin login.
func (a *App) AuthLogin(w http.ResponseWriter, r *http.Request) {
	a.login(w, r, domain.UserRoleDonor, "please use the admin login")
}

// AuthAdminLogin authenticates an admin.
func (a *App) AuthAdminLogin(w http.ResponseWriter, r *http.Request) {
	a.login(w, r, domain.UserRoleAdmin, "this login is for admin users only")
}

func (a *App) login(w http.ResponseWriter, r *http.Request, role domain.UserRole, wrongRoleMsg string) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	user, err := a.Users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
			return
		}
		a.fail(w, err)
		return
	}
	if err := auth.CheckPassword(req.Password, user.PasswordHash); err != nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
		return
	}
	if user.Role != role {
		a.error(w, http.StatusForbidden, "forbidden", wrongRoleMsg)
		return
	}

	tok, err := a.Tokens.Generate(user.ID, string(user.Role), user.Zone)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, loginResponse{Token: tok, User: toUserDTO(user)})
}

// ZoneSuggestion proposes a locality for the registration form based on the
// caller's IP. Advisory only; the donor always picks the final zone.
func (a *App) ZoneSuggestion(w http.ResponseWriter, r *http.Request) {
	suggestion := a.DefaultCity
	if a.Geo != nil {
		if city, err := a.Geo.CityName(clientIP(r)); err == nil && city != "" {
			suggestion = city
		}
	}
	a.json(w, http.StatusOK, map[string]string{"zone": suggestion})
}

func clientIP(r *http.Request) string {
	if xf := r.Header.Get("X-Forwarded-For"); xf != "" {
		parts := strings.Split(xf, ",")
		return strings.TrimSpace(parts[0])
	}
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i > 0 {
		host = host[:i]
	}
	return host
}

func toUserDTO(u *domain.User) userDTO {
	return userDTO{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Phone:    u.Phone,
		Role:     string(u.Role),
		Zone:     u.Zone,
	}
}
