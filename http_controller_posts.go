package metawall

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PostsController owns the wall endpoints.
type PostsController struct {
	repo   RepositoryManager
	logger Logger
}

func NewPostsController(repo RepositoryManager, logger Logger) *PostsController {
	if logger == nil {
		logger = defLogger{}
	}
	return &PostsController{
		repo:   repo,
		logger: logger,
	}
}

type CreatePostPayload struct {
	UserID  string   `json:"userId"`
	Content string   `json:"content"`
	Type    string   `json:"type"`
	Image   string   `json:"image"`
	Tags    []string `json:"tags"`
}

func (r CreatePostPayload) Validate() error {
	return runRules(&r,
		validation.Field(&r.UserID, validation.Required.Error("User ID is required")),
		validation.Field(&r.Content, validation.Required.Error("貼文內容必填")),
		validation.Field(&r.Type,
			validation.Required.Error("貼文種類必填"),
			validation.In(PostTypeFan, PostTypeGroup).Error("貼文種類格式不正確"),
		),
	)
}

type UpdatePostPayload struct {
	Image   *string   `json:"image"`
	Content *string   `json:"content"`
	Type    *string   `json:"type"`
	Tags    *[]string `json:"tags"`
}

func (r UpdatePostPayload) Validate() error {
	return runRules(&r,
		validation.Field(&r.Content, validation.NilOrNotEmpty.Error("貼文內容必填")),
		validation.Field(&r.Type, validation.In(PostTypeFan, PostTypeGroup).Error("貼文種類格式不正確")),
	)
}

// GetPosts lists posts with pagination, keyword filtering, and createdAt
// ordering; the author's public attributes ride along.
func (pc *PostsController) GetPosts(c *fiber.Ctx) error {
	query := PostQuery{
		Page:    c.QueryInt("page", 1),
		Limit:   c.QueryInt("limit", 10),
		Sort:    c.Query("sort", SortDesc),
		Keyword: c.Query("keyword"),
	}

	records, err := pc.repo.Posts().List(c.UserContext(), query)
	if err != nil {
		return err
	}

	return sendResponse(c, fiber.StatusOK, records, "")
}

func (pc *PostsController) GetPost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return NotFoundError("Post not found")
	}

	post, err := pc.repo.Posts().FindByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if post == nil {
		return NotFoundError("Post not found")
	}

	return sendResponse(c, fiber.StatusOK, post, "")
}

func (pc *PostsController) CreatePost(c *fiber.Ctx) error {
	payload := BodyPayload[*CreatePostPayload](c)

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		return BadRequestError("User ID is required")
	}

	post, err := pc.repo.Posts().Create(c.UserContext(), &Post{
		UserID:  userID,
		Content: payload.Content,
		Type:    payload.Type,
		Image:   payload.Image,
		Tags:    payload.Tags,
	})
	if err != nil {
		return err
	}

	pc.logger.Info("post created", "post_id", post.ID.String(), "user_id", userID.String())
	return sendResponse(c, fiber.StatusCreated, post, "Post created successfully")
}

func (pc *PostsController) UpdatePost(c *fiber.Ctx) error {
	payload := BodyPayload[*UpdatePostPayload](c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return NotFoundError("Post not found")
	}

	post, err := pc.repo.Posts().UpdateByID(c.UserContext(), id, PostPatch{
		Image:   payload.Image,
		Content: payload.Content,
		Type:    payload.Type,
		Tags:    payload.Tags,
	})
	if err != nil {
		return err
	}
	if post == nil {
		return NotFoundError("Post not found")
	}

	return sendResponse(c, fiber.StatusOK, post, "Post updated successfully")
}

func (pc *PostsController) DeletePost(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return NotFoundError("Post not found")
	}

	post, err := pc.repo.Posts().DeleteByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	if post == nil {
		return NotFoundError("Post not found")
	}

	return sendResponse(c, fiber.StatusOK, post, "Post deleted successfully")
}

// DeletePosts clears the wall. Unlike the rest of the handlers it has no
// target resource, but it still runs through the full pipeline.
func (pc *PostsController) DeletePosts(c *fiber.Ctx) error {
	deleted, err := pc.repo.Posts().DeleteAll(c.UserContext())
	if err != nil {
		return err
	}
	if deleted == 0 {
		return NotFoundError("No posts found to delete")
	}

	return sendResponse(c, fiber.StatusOK, fiber.Map{}, fmt.Sprintf("%d posts deleted successfully", deleted))
}
