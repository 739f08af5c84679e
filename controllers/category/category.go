package categoryController

import (
	"errors"

	"tchadskills/database"
	"tchadskills/middleware"
	"tchadskills/models"
	"tchadskills/utils"
	categoryValidator "tchadskills/validators/category"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetCategories lists active categories ordered for display.
func GetCategories(c *fiber.Ctx) error {
	db := database.Database.Db.Model(&models.Category{}).Where("is_active = ?", true)

	var total int64
	db.Count(&total)

	page := utils.PageParam(c)
	limit := utils.PageSize()
	offset := (page - 1) * limit

	var categories []models.Category
	if err := db.Order("display_order asc, name asc").
		Offset(offset).Limit(limit).
		Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!",
		utils.Paginated(c, total, page, limit, categories))
}

// GetCategoryBySlug returns one active category with its published course count.
func GetCategoryBySlug(c *fiber.Ctx) error {
	slug := c.Locals("categorySlug").(string)

	var category models.Category
	if err := database.Database.Db.Where("slug = ? AND is_active = ?", slug, true).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	var courseCount int64
	database.Database.Db.Model(&models.Course{}).
		Where("category_id = ? AND is_published = ?", category.ID, true).
		Count(&courseCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category fetched successfully!", fiber.Map{
		"category":     category,
		"course_count": courseCount,
	})
}

// CreateCategory creates a category. Admin only, enforced by the router.
func CreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*categoryValidator.CreateCategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if reqData.ParentID != nil {
		var parent models.Category
		if err := db.Where("id = ? AND is_active = ?", *reqData.ParentID, true).First(&parent).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent category not found!", nil)
		}
	}

	// A concurrent create can take the slug between the uniqueness check and
	// the insert; retry with the next suffix.
	var category models.Category
	var createErr error
	for attempt := 0; attempt < 3; attempt++ {
		slug, err := utils.EnsureUniqueSlug(db, "categories", "slug", reqData.Name)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate slug!", nil)
		}

		category = models.Category{
			Name:         reqData.Name,
			Slug:         slug,
			Description:  reqData.Description,
			Icon:         reqData.Icon,
			ParentID:     reqData.ParentID,
			DisplayOrder: reqData.DisplayOrder,
			IsActive:     true,
		}

		createErr = db.Create(&category).Error
		if createErr == nil || !errors.Is(createErr, gorm.ErrDuplicatedKey) {
			break
		}
	}
	if createErr != nil {
		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A category with this name was just created, please retry!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}
