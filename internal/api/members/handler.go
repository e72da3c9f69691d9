package members

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"greencouncil-api/internal/api/respond"
	"greencouncil-api/internal/content"
	"greencouncil-api/internal/domain/members"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) filtered(status, membershipType string) *gorm.DB {
	q := h.db.Model(&members.Member{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if membershipType != "" {
		q = q.Where("membership_type = ?", membershipType)
	}
	return q
}

// GET /api/members
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	page, limit = content.NormalizePage(page, limit)

	status := c.Query("status")
	if status == "all" {
		status = ""
	}
	membershipType := c.Query("type")

	var total int64
	if err := h.filtered(status, membershipType).Count(&total).Error; err != nil {
		respond.Error(c, err, "Failed to load members")
		return
	}
	pagination := content.NewPagination(page, limit, total)

	items := []members.Member{}
	err := h.filtered(status, membershipType).
		Order("created_at DESC").
		Limit(limit).
		Offset(pagination.Offset()).
		Find(&items).Error
	if err != nil {
		respond.Error(c, err, "Failed to load members")
		return
	}
	c.JSON(http.StatusOK, ListResponse{Items: items, Pagination: pagination})
}

// GET /api/members/:id
func (h *Handler) Get(c *gin.Context) {
	var m members.Member
	err := h.db.Where("id = ?", c.Param("id")).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respond.Error(c, content.ErrNotFound, "")
		return
	}
	if err != nil {
		respond.Error(c, err, "Failed to load member")
		return
	}
	c.JSON(http.StatusOK, m)
}

// POST /api/members — the public signup form. New members always start
// pending; status is advanced only through update.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	membershipType := req.MembershipType
	if membershipType == "" {
		membershipType = members.TypeIndividual
	}
	if !members.IsAllowedType(membershipType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid membership type"})
		return
	}

	var count int64
	if err := h.db.Model(&members.Member{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		respond.Error(c, err, "Failed to create member")
		return
	}
	if count > 0 {
		respond.Error(c, fmt.Errorf("%w: email %q already registered", content.ErrConflict, req.Email), "")
		return
	}

	m := members.Member{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		Organization:   req.Organization,
		MembershipType: membershipType,
		Status:         members.StatusPending,
		Language:       content.NormalizeLanguage(req.Language),
		Interests:      req.Interests,
	}
	if err := h.db.Create(&m).Error; err != nil {
		respond.Error(c, err, "Failed to create member")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": m.ID, "message": "Member registered"})
}

// PUT /api/members/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := map[string]interface{}{}
	if req.Email != nil {
		var count int64
		err := h.db.Model(&members.Member{}).
			Where("email = ? AND id <> ?", *req.Email, c.Param("id")).
			Count(&count).Error
		if err != nil {
			respond.Error(c, err, "Failed to update member")
			return
		}
		if count > 0 {
			respond.Error(c, fmt.Errorf("%w: email %q already registered", content.ErrConflict, *req.Email), "")
			return
		}
		fields["email"] = *req.Email
	}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Organization != nil {
		fields["organization"] = *req.Organization
	}
	if req.MembershipType != nil {
		if !members.IsAllowedType(*req.MembershipType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid membership type"})
			return
		}
		fields["membership_type"] = *req.MembershipType
	}
	if req.Status != nil {
		if !members.IsAllowedStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		fields["status"] = *req.Status
	}
	if req.Language != nil {
		fields["language"] = content.NormalizeLanguage(*req.Language)
	}
	if req.Interests != nil {
		fields["interests"] = req.Interests
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	res := h.db.Model(&members.Member{}).Where("id = ?", c.Param("id")).Updates(fields)
	if res.Error != nil {
		respond.Error(c, res.Error, "Failed to update member")
		return
	}
	if res.RowsAffected == 0 {
		respond.Error(c, content.ErrNotFound, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member updated"})
}

// DELETE /api/members/:id
func (h *Handler) Delete(c *gin.Context) {
	res := h.db.Where("id = ?", c.Param("id")).Delete(&members.Member{})
	if res.Error != nil {
		respond.Error(c, res.Error, "Failed to delete member")
		return
	}
	if res.RowsAffected == 0 {
		respond.Error(c, content.ErrNotFound, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted"})
}
