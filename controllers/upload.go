package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lumicoach/coaching-api/models"
	"github.com/lumicoach/coaching-api/utils"
)

// UploadMedia stores an admin-provided image (article cover, testimonial
// avatar, news illustration) on Cloudinary and returns its secure URL.
// Multipart uploads stay on a REST route; everything else goes through
// /graphql.
func UploadMedia(c *fiber.Ctx) error {
	role, _ := c.Locals("role").(string)
	if role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "Access denied",
			Error:   "admin role required",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing file",
			Error:   err.Error(),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to open file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	folder := c.FormValue("folder", "media")
	publicID := fmt.Sprintf("%s-%d", fileHeader.Filename, time.Now().Unix())

	url, err := utils.UploadToCloudinary(file, publicID, folder)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload file",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"url": url})
}
