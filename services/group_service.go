package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/restaurant-pos/models"
	"github.com/yeremiapane/restaurant-pos/utils"
)

const (
	maxSeatsPerGroup = 10
	maxItemQuantity  = 50
)

// FoodOrder is one (food, quantity) pair in a batch add request.
type FoodOrder struct {
	FoodID   uint `json:"food_id"`
	Quantity int  `json:"quantity"`
}

// GroupService drives the dining-group lifecycle:
// open -> submitted -> paid, with seat reservations held while open.
type GroupService struct {
	DB *gorm.DB
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{DB: db}
}

// CreateGroup reserves the given seats of a table for a new open group.
// The group and all of its seat reservations are written in one
// transaction; a seat held by another unsubmitted group aborts it.
func (gs *GroupService) CreateGroup(tableID uint, seatIDs []uint) (*models.DiningGroup, error) {
	if len(seatIDs) == 0 {
		return nil, utils.Validationf("seat ids cannot be empty")
	}
	if len(seatIDs) > maxSeatsPerGroup {
		return nil, utils.Validationf("cannot create group with more than %d seats", maxSeatsPerGroup)
	}

	var group models.DiningGroup

	err := gs.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, tableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundf("table not found with id %d", tableID)
			}
			return err
		}

		// Lock the seat rows so two overlapping claims serialize; sqlite
		// (tests) has a single writer and rejects FOR UPDATE.
		seatQuery := tx.Model(&models.Seat{})
		if tx.Dialector.Name() != "sqlite" {
			seatQuery = seatQuery.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var seats []models.Seat
		if err := seatQuery.Where("id IN ?", seatIDs).Find(&seats).Error; err != nil {
			return err
		}
		if len(seats) != len(seatIDs) {
			return utils.NotFoundf("one or more seats not found")
		}

		for _, seat := range seats {
			if seat.TableID != table.ID {
				return utils.Validationf("seat %s does not belong to table %d", seat.SeatNumber, table.TableNumber)
			}
		}

		for _, seat := range seats {
			var occupied int64
			err := tx.Model(&models.GroupSeat{}).
				Joins("JOIN dining_groups ON dining_groups.id = group_seats.group_id").
				Where("group_seats.seat_id = ? AND dining_groups.submitted = ?", seat.ID, false).
				Count(&occupied).Error
			if err != nil {
				return err
			}
			if occupied > 0 {
				return utils.InvalidOperationf("seat %s is already occupied by another active group", seat.SeatNumber)
			}
		}

		group = models.DiningGroup{
			GroupName: buildGroupName(table.TableNumber, seats),
			Submitted: false,
			Paid:      false,
			TableID:   table.ID,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&group).Error; err != nil {
			return err
		}

		for _, seat := range seats {
			gsRow := models.GroupSeat{GroupID: group.ID, SeatID: seat.ID}
			if err := tx.Create(&gsRow).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Created dining group %s (id=%d) on table %d with %d seats",
		group.GroupName, group.ID, tableID, len(seatIDs))
	return &group, nil
}

// buildGroupName composes the display name: table number, a short random
// disambiguator and the sorted concatenation of the seat labels.
func buildGroupName(tableNumber int, seats []models.Seat) string {
	labels := make([]string, 0, len(seats))
	for _, seat := range seats {
		labels = append(labels, seat.SeatNumber)
	}
	sort.Strings(labels)

	return fmt.Sprintf("T%d-G%s-%s", tableNumber, uuid.NewString()[:4], strings.Join(labels, ""))
}

// AddItemToGroup adds quantity of a food to an open group. If the group
// already holds that food the quantities merge, capped at 50 total.
func (gs *GroupService) AddItemToGroup(groupID, foodID uint, quantity int) (*models.OrderItem, error) {
	var item *models.OrderItem
	err := gs.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		item, err = addItemTx(tx, groupID, foodID, quantity)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// AddItemsToGroup applies the batch sequentially inside one transaction;
// any single failure rolls back the whole batch.
func (gs *GroupService) AddItemsToGroup(groupID uint, orders []FoodOrder) ([]models.OrderItem, error) {
	if len(orders) == 0 {
		return nil, utils.Validationf("food orders cannot be empty")
	}

	var items []models.OrderItem
	err := gs.DB.Transaction(func(tx *gorm.DB) error {
		for _, order := range orders {
			item, err := addItemTx(tx, groupID, order.FoodID, order.Quantity)
			if err != nil {
				return err
			}
			items = append(items, *item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

func addItemTx(tx *gorm.DB, groupID, foodID uint, quantity int) (*models.OrderItem, error) {
	if quantity <= 0 {
		return nil, utils.Validationf("quantity must be greater than 0")
	}
	if quantity > maxItemQuantity {
		return nil, utils.Validationf("quantity cannot exceed %d items", maxItemQuantity)
	}

	group, err := findGroupTx(tx, groupID)
	if err != nil {
		return nil, err
	}
	if group.Submitted {
		return nil, utils.InvalidOperationf("cannot add items to a submitted group")
	}

	var food models.Food
	if err := tx.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("food not found with id %d", foodID)
		}
		return nil, err
	}

	var existing models.OrderItem
	err = tx.Where("group_id = ? AND food_id = ?", group.ID, food.ID).First(&existing).Error
	if err == nil {
		newQuantity := existing.Quantity + quantity
		if newQuantity > maxItemQuantity {
			return nil, utils.Validationf("total quantity for this item would exceed %d", maxItemQuantity)
		}
		existing.Quantity = newQuantity
		if err := tx.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := models.OrderItem{
		GroupID:  group.ID,
		FoodID:   food.ID,
		Quantity: quantity,
	}
	if err := tx.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItemQuantity sets a new quantity on an item of an open group.
func (gs *GroupService) UpdateItemQuantity(groupID, itemID uint, quantity int) (*models.OrderItem, error) {
	if quantity <= 0 {
		return nil, utils.Validationf("quantity must be greater than 0")
	}
	if quantity > maxItemQuantity {
		return nil, utils.Validationf("quantity cannot exceed %d items", maxItemQuantity)
	}

	group, err := findGroupTx(gs.DB, groupID)
	if err != nil {
		return nil, err
	}
	if group.Submitted {
		return nil, utils.InvalidOperationf("cannot edit items in a submitted group")
	}

	item, err := findGroupItemTx(gs.DB, group.ID, itemID)
	if err != nil {
		return nil, err
	}

	item.Quantity = quantity
	if err := gs.DB.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItemFromGroup deletes an item from an open group.
func (gs *GroupService) RemoveItemFromGroup(groupID, itemID uint) error {
	group, err := findGroupTx(gs.DB, groupID)
	if err != nil {
		return err
	}
	if group.Submitted {
		return utils.InvalidOperationf("cannot remove items from a submitted group")
	}

	item, err := findGroupItemTx(gs.DB, group.ID, itemID)
	if err != nil {
		return err
	}

	return gs.DB.Delete(item).Error
}

// SubmitGroup finalizes the order. One-way: there is no un-submit, and
// the group's seats become claimable again from this point on.
func (gs *GroupService) SubmitGroup(groupID uint) (*models.DiningGroup, error) {
	group, err := findGroupTx(gs.DB, groupID)
	if err != nil {
		return nil, err
	}
	if group.Submitted {
		return nil, utils.InvalidOperationf("group is already submitted")
	}

	var itemCount int64
	if err := gs.DB.Model(&models.OrderItem{}).Where("group_id = ?", group.ID).Count(&itemCount).Error; err != nil {
		return nil, err
	}
	if itemCount == 0 {
		return nil, utils.InvalidOperationf("cannot submit group without any items")
	}

	group.Submitted = true
	if err := gs.DB.Save(group).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Submitted group %s (id=%d)", group.GroupName, group.ID)
	return group, nil
}

// MarkGroupAsPaid closes out a submitted group. One-way.
func (gs *GroupService) MarkGroupAsPaid(groupID uint) (*models.DiningGroup, error) {
	group, err := findGroupTx(gs.DB, groupID)
	if err != nil {
		return nil, err
	}
	if !group.Submitted {
		return nil, utils.InvalidOperationf("cannot mark an unsubmitted group as paid")
	}
	if group.Paid {
		return nil, utils.InvalidOperationf("group is already marked as paid")
	}

	group.Paid = true
	if err := gs.DB.Save(group).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Group %s (id=%d) marked as paid", group.GroupName, group.ID)
	return group, nil
}

// DeleteGroup removes an open group together with its items and seat
// reservations in one transaction. Submitted groups are immutable.
func (gs *GroupService) DeleteGroup(groupID uint) error {
	err := gs.DB.Transaction(func(tx *gorm.DB) error {
		group, err := findGroupTx(tx, groupID)
		if err != nil {
			return err
		}
		if group.Submitted {
			return utils.InvalidOperationf("cannot delete a submitted group")
		}

		if err := tx.Where("group_id = ?", group.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", group.ID).Delete(&models.GroupSeat{}).Error; err != nil {
			return err
		}
		return tx.Delete(group).Error
	})
	if err != nil {
		return err
	}

	utils.InfoLogger.Printf("Deleted group id=%d", groupID)
	return nil
}

func (gs *GroupService) GetGroupByID(groupID uint) (*models.DiningGroup, error) {
	var group models.DiningGroup
	if err := gs.DB.Preload("Table").First(&group, groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("dining group not found with id %d", groupID)
		}
		return nil, err
	}
	return &group, nil
}

func (gs *GroupService) GetItemsByGroup(groupID uint) ([]models.OrderItem, error) {
	if _, err := findGroupTx(gs.DB, groupID); err != nil {
		return nil, err
	}

	var items []models.OrderItem
	err := gs.DB.Preload("Food").
		Where("group_id = ?", groupID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (gs *GroupService) GetSubmittedGroups() ([]models.DiningGroup, error) {
	return gs.findGroupsBy("submitted = ?", true)
}

func (gs *GroupService) GetUnsubmittedGroups() ([]models.DiningGroup, error) {
	return gs.findGroupsBy("submitted = ?", false)
}

func (gs *GroupService) GetPaidGroups() ([]models.DiningGroup, error) {
	return gs.findGroupsBy("paid = ?", true)
}

func (gs *GroupService) GetUnpaidGroups() ([]models.DiningGroup, error) {
	return gs.findGroupsBy("paid = ?", false)
}

func (gs *GroupService) GetAllGroups() ([]models.DiningGroup, error) {
	var groups []models.DiningGroup
	err := gs.DB.Preload("Table").Order("created_at DESC").Find(&groups).Error
	return groups, err
}

func (gs *GroupService) findGroupsBy(query string, arg interface{}) ([]models.DiningGroup, error) {
	var groups []models.DiningGroup
	err := gs.DB.Preload("Table").Where(query, arg).Order("created_at DESC").Find(&groups).Error
	return groups, err
}

func findGroupTx(tx *gorm.DB, groupID uint) (*models.DiningGroup, error) {
	var group models.DiningGroup
	if err := tx.First(&group, groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("dining group not found with id %d", groupID)
		}
		return nil, err
	}
	return &group, nil
}

// findGroupItemTx resolves an item and guards against cross-group ids.
func findGroupItemTx(tx *gorm.DB, groupID, itemID uint) (*models.OrderItem, error) {
	var item models.OrderItem
	if err := tx.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NotFoundf("order item not found with id %d", itemID)
		}
		return nil, err
	}
	if item.GroupID != groupID {
		return nil, utils.InvalidOperationf("item does not belong to the specified group")
	}
	return &item, nil
}
