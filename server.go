package metawall

import (
	"github.com/gofiber/fiber/v2"
)

// ServerOptions carries the immutable collaborators the HTTP layer needs.
// Everything here is established at startup and never mutated during request
// handling.
type ServerOptions struct {
	Config *Config
	Logger Logger
	Repo   RepositoryManager
	Tokens TokenService
}

// NewServer assembles the Fiber application: routes, the validation and auth
// gates in front of each handler, the central error responder, and the 404
// catch-all as the terminal stage.
func NewServer(opts ServerOptions) *fiber.App {
	logger := opts.Logger
	if logger == nil {
		logger = defLogger{}
	}

	app := fiber.New(fiber.Config{
		AppName:               "metawall",
		DisableStartupMessage: true,
		ErrorHandler:          NewErrorHandler(opts.Config.IsDevelopment(), logger),
	})

	registerRoutes(app, opts, logger)

	app.Use(NotFoundHandler)

	return app
}

// registerRoutes wires the pipeline per endpoint: validation gate, then the
// auth gate where the operation is protected, then the wrapped handler.
// Every business handler goes through WrapHandler, the bulk delete included.
func registerRoutes(app *fiber.App, opts ServerOptions, logger Logger) {
	usersCtrl := NewUsersController(opts.Repo, opts.Tokens, logger)
	postsCtrl := NewPostsController(opts.Repo, logger)
	authGate := AuthGate(opts.Tokens)

	users := app.Group("/users")
	users.Post("/signup",
		ValidateBody(func() *SignupPayload { return &SignupPayload{} }),
		WrapHandler(usersCtrl.Signup),
	)
	users.Post("/login",
		ValidateBody(func() *LoginPayload { return &LoginPayload{} }),
		WrapHandler(usersCtrl.Login),
	)
	users.Post("/updatePassword",
		ValidateBody(func() *UpdatePasswordPayload { return &UpdatePasswordPayload{} }),
		authGate,
		WrapHandler(usersCtrl.UpdatePassword),
	)
	users.Post("/forgetPassword",
		ValidateBody(func() *ForgetPasswordPayload { return &ForgetPasswordPayload{} }),
		WrapHandler(usersCtrl.ForgetPassword),
	)
	users.Get("/profile",
		authGate,
		WrapHandler(usersCtrl.GetInfo),
	)
	users.Patch("/profile",
		ValidateBody(func() *UpdateInfoPayload { return &UpdateInfoPayload{} }),
		authGate,
		WrapHandler(usersCtrl.UpdateInfo),
	)

	wall := app.Group("/posts")
	wall.Get("/", WrapHandler(postsCtrl.GetPosts))
	wall.Post("/",
		ValidateBody(func() *CreatePostPayload { return &CreatePostPayload{} }),
		WrapHandler(postsCtrl.CreatePost),
	)
	wall.Delete("/", WrapHandler(postsCtrl.DeletePosts))
	wall.Get("/:id", WrapHandler(postsCtrl.GetPost))
	wall.Patch("/:id",
		ValidateBody(func() *UpdatePostPayload { return &UpdatePostPayload{} }),
		WrapHandler(postsCtrl.UpdatePost),
	)
	wall.Delete("/:id", WrapHandler(postsCtrl.DeletePost))
}
