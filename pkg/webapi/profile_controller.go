package webapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/model"
	"github.com/tochlyapp/tochly-backend/pkg/tdb/stor"
)

type ProfileController struct {
	userStor    stor.UserStor
	profileStor stor.ProfileStor
}

func NewProfileController(userStor stor.UserStor, profileStor stor.ProfileStor) *ProfileController {
	return &ProfileController{userStor: userStor, profileStor: profileStor}
}

func (c *ProfileController) GetProfile(ctx echo.Context) error {
	userID, err := strconv.Atoi(ctx.Param("user_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "user_id must be an integer"})
	}

	profile, err := c.profileStor.GetProfileByUserID(userID)
	if errors.Is(err, stor.ErrNotFound) {
		return ctx.JSON(http.StatusNotFound, echo.Map{"detail": "profile not found"})
	} else if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, profile)
}

// UpdateProfile creates the profile row on first write.
func (c *ProfileController) UpdateProfile(ctx echo.Context) error {
	var req struct {
		DisplayName string  `json:"display_name"`
		Title       string  `json:"title"`
		PhoneNumber *string `json:"phone_number"`
		Online      *bool   `json:"online"`
		Status      *string `json:"status"`
		Timezone    string  `json:"timezone"`
		DarkMode    *bool   `json:"dark_mode"`
	}

	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "malformed request body"})
	}

	userID, err := strconv.Atoi(ctx.Param("user_id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "user_id must be an integer"})
	}

	user, err := c.userStor.GetUserByID(userID)
	if errors.Is(err, stor.ErrNotFound) {
		return ctx.JSON(http.StatusNotFound, echo.Map{"detail": "user not found"})
	} else if err != nil {
		return err
	}

	if req.Status != nil {
		status := strings.ToLower(strings.TrimSpace(*req.Status))
		if !model.ValidStatus(status) {
			return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "invalid status"})
		}
		*req.Status = status
	}

	profile, err := c.profileStor.GetProfileByUserID(user.ID)
	switch {
	case errors.Is(err, stor.ErrNotFound):
		profile = &model.Profile{UserID: user.ID}
		if _, err := c.profileStor.CreateProfile(profile); err != nil {
			return err
		}
	case err != nil:
		return err
	}

	updates := map[string]any{}

	if req.DisplayName != "" {
		updates["display_name"] = req.DisplayName
	}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Timezone != "" {
		updates["timezone"] = req.Timezone
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = *req.PhoneNumber
	}
	if req.Online != nil {
		updates["online"] = *req.Online
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.DarkMode != nil {
		updates["dark_mode"] = *req.DarkMode
	}

	updated, err := c.profileStor.UpdateProfile(profile, updates)
	if errors.Is(err, stor.ErrDuplicate) {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"detail": "phone number is already in use"})
	} else if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, updated)
}
