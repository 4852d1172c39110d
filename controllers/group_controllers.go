package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

type GroupController struct {
	Service *services.GroupService
}

func NewGroupController(db *gorm.DB) *GroupController {
	return &GroupController{Service: services.NewGroupService(db)}
}

type foodOrderRequest struct {
	FoodID   uint `json:"food_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// CreateGroup -> POST /api/groups/create
func (gc *GroupController) CreateGroup(c *gin.Context) {
	var req struct {
		TableID uint   `json:"table_id" binding:"required"`
		SeatIDs []uint `json:"seat_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	group, err := gc.Service.CreateGroup(req.TableID, req.SeatIDs)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Dining group created", group)
}

// AddItem -> POST /api/groups/:group_id/add-item
func (gc *GroupController) AddItem(c *gin.Context) {
	groupID, ok := pathID(c, "group_id")
	if !ok {
		return
	}

	var req foodOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := gc.Service.AddItemToGroup(groupID, req.FoodID, req.Quantity)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Item added to group", item)
}

// AddItems -> POST /api/groups/:group_id/add-items, all-or-nothing batch.
func (gc *GroupController) AddItems(c *gin.Context) {
	groupID, ok := pathID(c, "group_id")
	if !ok {
		return
	}

	var reqs []foodOrderRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orders := make([]services.FoodOrder, 0, len(reqs))
	for _, req := range reqs {
		orders = append(orders, services.FoodOrder{FoodID: req.FoodID, Quantity: req.Quantity})
	}

	items, err := gc.Service.AddItemsToGroup(groupID, orders)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Items added to group", items)
}

// UpdateItemQuantity -> PUT /api/groups/:group_id/items/:item_id
func (gc *GroupController) UpdateItemQuantity(c *gin.Context) {
	groupID, ok := pathID(c, "group_id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item, err := gc.Service.UpdateItemQuantity(groupID, itemID, req.Quantity)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item quantity updated", item)
}

// RemoveItem -> DELETE /api/groups/:group_id/items/:item_id
func (gc *GroupController) RemoveItem(c *gin.Context) {
	groupID, ok := pathID(c, "group_id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return
	}

	if err := gc.Service.RemoveItemFromGroup(groupID, itemID); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item removed from group", nil)
}

// SubmitGroup -> POST /api/groups/:group_id/submit
func (gc *GroupController) SubmitGroup(c *gin.Context) {
	groupID, ok := pathID(c, "group_id")
	if !ok {
		return
	}

	group, err := gc.Service.SubmitGroup(groupID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Group submitted", group)
}

// MarkGroupAsPaid -> POST /api/groups/:group_id/pay
func (gc *GroupController) MarkGroupAsPaid(c *gin.Context) {
	groupID, ok := pathID(c, "group_id")
	if !ok {
		return
	}

	group, err := gc.Service.MarkGroupAsPaid(groupID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Group marked as paid", group)
}

// DeleteGroup -> DELETE /api/groups/:group_id
func (gc *GroupController) DeleteGroup(c *gin.Context) {
	groupID, ok := pathID(c, "group_id")
	if !ok {
		return
	}

	if err := gc.Service.DeleteGroup(groupID); err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Group deleted", gin.H{"group_id": groupID})
}

// GetGroupByID -> GET /api/groups/:group_id
func (gc *GroupController) GetGroupByID(c *gin.Context) {
	groupID, ok := pathID(c, "group_id")
	if !ok {
		return
	}

	group, err := gc.Service.GetGroupByID(groupID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Group detail", group)
}

// GetGroupItems -> GET /api/groups/:group_id/items
func (gc *GroupController) GetGroupItems(c *gin.Context) {
	groupID, ok := pathID(c, "group_id")
	if !ok {
		return
	}

	items, err := gc.Service.GetItemsByGroup(groupID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Group items", items)
}

func (gc *GroupController) GetSubmittedGroups(c *gin.Context) {
	gc.respondGroupList(c, "Submitted groups", gc.Service.GetSubmittedGroups)
}

func (gc *GroupController) GetUnsubmittedGroups(c *gin.Context) {
	gc.respondGroupList(c, "Unsubmitted groups", gc.Service.GetUnsubmittedGroups)
}

func (gc *GroupController) GetPaidGroups(c *gin.Context) {
	gc.respondGroupList(c, "Paid groups", gc.Service.GetPaidGroups)
}

func (gc *GroupController) GetUnpaidGroups(c *gin.Context) {
	gc.respondGroupList(c, "Unpaid groups", gc.Service.GetUnpaidGroups)
}

func (gc *GroupController) GetAllGroups(c *gin.Context) {
	gc.respondGroupList(c, "All groups", gc.Service.GetAllGroups)
}

func (gc *GroupController) respondGroupList(c *gin.Context, message string, fetch func() ([]models.DiningGroup, error)) {
	groups, err := fetch()
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, message, groups)
}

// pathID parses a numeric path parameter, replying 400 on garbage.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.Validationf("invalid %s: %s", name, raw))
		return 0, false
	}
	return uint(id), true
}
