package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/SergeyBogomolovv/order-processor/internal/entities"
	"github.com/go-playground/validator/v10"
)

// Memory keeps users and stock in process memory. It does no locking;
// every access must go through a single-writer trm.Manager.
type Memory struct {
	users     map[string]*entities.User
	inventory entities.Inventory
}

func NewMemory() *Memory {
	return &Memory{
		users:     make(map[string]*entities.User),
		inventory: make(entities.Inventory),
	}
}

// User returns the shared user record, or nil.
func (m *Memory) User(id string) *entities.User {
	return m.users[id]
}

// UpsertUser creates or updates a user profile. Loyalty points of an existing
// user are kept, so balances never go down.
func (m *Memory) UpsertUser(u entities.User) entities.User {
	existing, ok := m.users[u.ID]
	if !ok {
		stored := u
		m.users[u.ID] = &stored
		return stored
	}

	existing.Status = u.Status
	existing.Tier = u.Tier
	existing.State = u.State
	existing.Email = u.Email
	existing.Phone = u.Phone
	return *existing
}

// Inventory returns the shared inventory map.
func (m *Memory) Inventory() entities.Inventory {
	return m.inventory
}

func (m *Memory) Stock(itemID string) (int, bool) {
	e, ok := m.inventory.Entry(itemID)
	if !ok {
		return 0, false
	}
	return e.Quantity, true
}

func (m *Memory) SetStock(itemID string, quantity int) {
	if e, ok := m.inventory.Entry(itemID); ok {
		e.Quantity = quantity
		return
	}
	m.inventory[itemID] = &entities.InventoryEntry{Quantity: quantity}
}

type seedUser struct {
	ID            string `json:"id" validate:"required"`
	Status        string `json:"status" validate:"required"`
	Tier          string `json:"tier"`
	State         string `json:"state"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	LoyaltyPoints int    `json:"loyalty_points" validate:"gte=0"`
}

type seed struct {
	Users     []seedUser     `json:"users" validate:"dive"`
	Inventory map[string]int `json:"inventory" validate:"dive,keys,required,endkeys,gte=0"`
}

// LoadSeed reads users and stock from JSON.
func (m *Memory) LoadSeed(r io.Reader) error {
	var s seed
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return fmt.Errorf("failed to decode seed: %w", err)
	}
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}

	for _, u := range s.Users {
		m.UpsertUser(entities.User{
			ID:            u.ID,
			Status:        u.Status,
			Tier:          entities.Tier(u.Tier),
			State:         u.State,
			Email:         u.Email,
			Phone:         u.Phone,
			LoyaltyPoints: u.LoyaltyPoints,
		})
	}
	for id, q := range s.Inventory {
		m.SetStock(id, q)
	}
	return nil
}

func (m *Memory) LoadSeedFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()
	return m.LoadSeed(f)
}
