package controllers

import (
	"errors"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/green-citizen/api-go/media"
	"github.com/green-citizen/api-go/models"
	"github.com/green-citizen/api-go/types"
	"github.com/green-citizen/api-go/utils"
	"github.com/green-citizen/api-go/workflow"
	"gorm.io/gorm"
)

type ActionController struct {
	DB         *gorm.DB
	Submission *workflow.SubmissionService
}

func NewActionController(db *gorm.DB, submission *workflow.SubmissionService) *ActionController {
	return &ActionController{DB: db, Submission: submission}
}

func readMultipartFile(fh *multipart.FileHeader) (media.File, error) {
	f, err := fh.Open()
	if err != nil {
		return media.File{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return media.File{}, err
	}

	return media.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Data:        data,
	}, nil
}

// CreateAction logs one environmental action: it stages the uploaded video
// and photos, validates the draft and drives the submission pipeline. The
// record comes back in verification state "pending".
func (ac *ActionController) CreateAction(c *gin.Context) {
	user := utils.GetUser(c)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form", "success": false})
		return
	}

	draft := workflow.NewDraft(time.Now().UTC())

	if v := c.PostForm("action_type"); v != "" {
		draft.ActionType = types.ActionType(v)
	}
	draft.CustomAction = c.PostForm("custom_action")
	draft.Description = c.PostForm("description")
	if v := c.PostForm("recorded_at"); v != "" {
		draft.RecordedDate = v
	}
	if v := c.PostForm("recorded_time"); v != "" {
		draft.RecordedTime = v
	}
	if v := c.PostForm("privacy_setting"); v != "" {
		draft.Privacy = types.PrivacySetting(v)
	}

	latStr, lngStr := c.PostForm("gps_lat"), c.PostForm("gps_lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates", "field": "location", "success": false})
			return
		}
		draft.SetCoordinates(lat, lng)
	}

	if videos := form.File["video"]; len(videos) > 0 {
		file, err := readMultipartFile(videos[0])
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read video upload", "success": false})
			return
		}
		if _, err := draft.Media.SelectVideo(file); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "video", "success": false})
			return
		}
	}

	var photoFiles []media.File
	for _, fh := range form.File["photos"] {
		file, err := readMultipartFile(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read photo upload", "success": false})
			return
		}
		photoFiles = append(photoFiles, file)
	}
	if len(photoFiles) > 0 {
		if _, err := draft.Media.SelectPhotos(photoFiles); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": "photos", "success": false})
			return
		}
	}

	action, err := ac.Submission.Submit(c.Request.Context(), draft, user.UserID)
	if err != nil {
		var validation *workflow.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Msg, "field": validation.Field, "success": false})
			return
		}
		var upload *workflow.UploadError
		if errors.As(err, &upload) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to upload media, please try again", "success": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log action", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{
		Success: true,
		Data:    action,
		Message: "Action logged successfully! Pending verification.",
	})
}

// GetMyActions lists the caller's actions, newest first.
func (ac *ActionController) GetMyActions(c *gin.Context) {
	user := utils.GetUser(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 20
	}

	var total int64
	if err := ac.DB.Model(&models.Action{}).Where("user_id = ?", user.UserID).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load actions", "success": false})
		return
	}

	var actions []models.Action
	if err := ac.DB.Where("user_id = ?", user.UserID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&actions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load actions", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    actions,
		Pagination: &PaginationMeta{
			CurrentPage: page,
			PageSize:    pageSize,
			TotalItems:  total,
			TotalPages:  int(math.Ceil(float64(total) / float64(pageSize))),
		},
	})
}
