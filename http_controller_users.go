package metawall

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// UsersController owns the account endpoints: signup, login, password
// maintenance, and profile reads/updates.
type UsersController struct {
	repo   RepositoryManager
	tokens TokenService
	logger Logger
}

func NewUsersController(repo RepositoryManager, tokens TokenService, logger Logger) *UsersController {
	if logger == nil {
		logger = defLogger{}
	}
	return &UsersController{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

type SignupPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r SignupPayload) Validate() error {
	return runRules(&r,
		validation.Field(&r.Name,
			validation.Required.Error("姓名為必填欄位"),
			validation.Length(2, 0).Error("name 至少需要 2 個字元以上"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email 未填寫"),
			is.Email.Error("Email 格式不正確"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password 未填寫"),
			validation.Length(8, 0).Error("密碼需至少 8 碼以上"),
		),
	)
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginPayload) Validate() error {
	return runRules(&r,
		validation.Field(&r.Email, validation.Required.Error("email 未填寫")),
		validation.Field(&r.Password, validation.Required.Error("password 未填寫")),
	)
}

type UpdatePasswordPayload struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r UpdatePasswordPayload) Validate() error {
	return runRules(&r,
		validation.Field(&r.Password, validation.Required.Error("當前密碼和新密碼均為必填欄位")),
		validation.Field(&r.ConfirmPassword, validation.Required.Error("當前密碼和新密碼均為必填欄位")),
	)
}

type ForgetPasswordPayload struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

func (r ForgetPasswordPayload) Validate() error {
	return runRules(&r,
		validation.Field(&r.Email, validation.Required.Error("email 未填寫")),
		validation.Field(&r.Code, validation.Required.Error("驗證碼未填寫")),
		validation.Field(&r.NewPassword, validation.Required.Error("password 未填寫")),
	)
}

type UpdateInfoPayload struct {
	Name  *string `json:"name"`
	Photo *string `json:"photo"`
	Sex   *string `json:"sex"`
}

func (r UpdateInfoPayload) Validate() error {
	return runRules(&r,
		validation.Field(&r.Name, validation.Length(2, 0).Error("name 至少需要 2 個字元以上")),
		validation.Field(&r.Photo, validation.By(photoURL)),
		validation.Field(&r.Sex, validation.In(SexMale, SexFemale).Error("性別格式不正確")),
	)
}

// Signup registers an account and answers with a fresh token.
func (uc *UsersController) Signup(c *fiber.Ctx) error {
	payload := BodyPayload[*SignupPayload](c)
	ctx := c.UserContext()

	existing, err := uc.repo.Users().FindByEmail(ctx, payload.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := HashPassword(payload.Password)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to hash password")
	}

	user, err := uc.repo.Users().Create(ctx, &User{
		Name:         payload.Name,
		Email:        payload.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return err
	}

	token, err := uc.tokens.Issue(user.Identity())
	if err != nil {
		return err
	}

	uc.logger.Info("user registered", "user_id", user.Identity())
	return sendAuthToken(c, fiber.StatusCreated, token)
}

// Login verifies the password credential and answers with a fresh token.
func (uc *UsersController) Login(c *fiber.Ctx) error {
	payload := BodyPayload[*LoginPayload](c)
	ctx := c.UserContext()

	user, err := uc.repo.Users().FindByEmailWithSecrets(ctx, payload.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := ComparePasswordAndHash(payload.Password, user.PasswordHash); err != nil {
		return err
	}

	token, err := uc.tokens.Issue(user.Identity())
	if err != nil {
		return err
	}

	return sendAuthToken(c, fiber.StatusOK, token)
}

// UpdatePassword replaces the caller's credential wholesale and answers with
// a fresh token.
func (uc *UsersController) UpdatePassword(c *fiber.Ctx) error {
	payload := BodyPayload[*UpdatePasswordPayload](c)

	if payload.Password != payload.ConfirmPassword {
		return ErrPasswordMismatch
	}

	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	hash, err := HashPassword(payload.ConfirmPassword)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to hash password")
	}

	if err := uc.repo.Users().ResetPassword(c.UserContext(), userID, hash); err != nil {
		return err
	}

	token, err := uc.tokens.Issue(userID.String())
	if err != nil {
		return err
	}

	uc.logger.Info("password updated", "user_id", userID.String())
	return sendAuthToken(c, fiber.StatusOK, token)
}

// ForgetPassword recovers an account through the stored one-time verification
// code and replaces the password.
func (uc *UsersController) ForgetPassword(c *fiber.Ctx) error {
	payload := BodyPayload[*ForgetPasswordPayload](c)
	ctx := c.UserContext()

	user, err := uc.repo.Users().FindByEmailWithSecrets(ctx, payload.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	claims, err := uc.tokens.Validate(user.VerificationToken)
	if err != nil {
		// An unusable stored token and a wrong code are indistinguishable to
		// the caller.
		return ErrBadVerificationCode
	}
	if claims.VerificationCode() != payload.Code {
		return ErrBadVerificationCode
	}

	hash, err := HashPassword(payload.NewPassword)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to hash password")
	}

	if err := uc.repo.Users().ResetPassword(ctx, user.ID, hash); err != nil {
		return err
	}

	uc.logger.Info("password recovered", "user_id", user.Identity())
	return sendAuthOK(c)
}

// GetInfo returns the caller's profile. The password never travels with it.
func (uc *UsersController) GetInfo(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := uc.repo.Users().FindByID(c.UserContext(), userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	return sendAuthResult(c, fiber.StatusOK, user)
}

// UpdateInfo applies a partial profile update; absent fields stay untouched.
func (uc *UsersController) UpdateInfo(c *fiber.Ctx) error {
	payload := BodyPayload[*UpdateInfoPayload](c)

	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := uc.repo.Users().UpdateByID(c.UserContext(), userID, UserPatch{
		Name:  payload.Name,
		Photo: payload.Photo,
		Sex:   payload.Sex,
	})
	if err != nil {
		return err
	}
	if user == nil {
		return NotFoundError("找不到用戶")
	}

	return sendAuthResult(c, fiber.StatusOK, user)
}

// currentUserID resolves the authenticated account id attached by the auth
// gate.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims, ok := CurrentClaims(c)
	if !ok {
		return uuid.Nil, ErrNotLoggedIn
	}

	id, err := uuid.Parse(claims.UserID())
	if err != nil {
		return uuid.Nil, ErrTokenMalformed
	}

	return id, nil
}
