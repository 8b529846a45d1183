package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	cartModel "summerschool_backend/internals/features/carts/model"
	"summerschool_backend/internals/features/checkout/dto"
	"summerschool_backend/internals/features/checkout/repository"
	classModel "summerschool_backend/internals/features/classes/model"
	classRepo "summerschool_backend/internals/features/classes/repository"
	enrollModel "summerschool_backend/internals/features/enrollments/model"
)

// memoryStore applies checkout steps one by one and restores a copy of every
// table when a later step fails, like a rolled back transaction.
type memoryStore struct {
	mu          sync.Mutex
	classes     map[uuid.UUID]classModel.ClassModel
	instructors map[string]int
	carts       map[uuid.UUID]cartModel.CartItemModel
	enrollments []enrollModel.EnrollmentModel
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		classes:     map[uuid.UUID]classModel.ClassModel{},
		instructors: map[string]int{},
		carts:       map[uuid.UUID]cartModel.CartItemModel{},
	}
}

func (m *memoryStore) addClass(seats int, owner string) uuid.UUID {
	id := uuid.New()
	m.classes[id] = classModel.ClassModel{ID: id, Name: "Pottery", Email: owner, Price: 50, Seats: seats, State: "approved"}
	return id
}

func (m *memoryStore) addCart(email string, classID uuid.UUID) uuid.UUID {
	id := uuid.New()
	m.carts[id] = cartModel.CartItemModel{ID: id, Email: email, ClassID: classID}
	return id
}

type snapshot struct {
	classes     map[uuid.UUID]classModel.ClassModel
	instructors map[string]int
	carts       map[uuid.UUID]cartModel.CartItemModel
	enrollments []enrollModel.EnrollmentModel
}

func (m *memoryStore) save() snapshot {
	s := snapshot{
		classes:     make(map[uuid.UUID]classModel.ClassModel, len(m.classes)),
		instructors: make(map[string]int, len(m.instructors)),
		carts:       make(map[uuid.UUID]cartModel.CartItemModel, len(m.carts)),
		enrollments: append([]enrollModel.EnrollmentModel(nil), m.enrollments...),
	}
	for k, v := range m.classes {
		s.classes[k] = v
	}
	for k, v := range m.instructors {
		s.instructors[k] = v
	}
	for k, v := range m.carts {
		s.carts[k] = v
	}
	return s
}

func (m *memoryStore) restore(s snapshot) {
	m.classes, m.instructors, m.carts, m.enrollments = s.classes, s.instructors, s.carts, s.enrollments
}

func (m *memoryStore) Checkout(_ context.Context, in dto.CheckoutInput) (*enrollModel.EnrollmentModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved := m.save()
	rec, err := m.apply(in)
	if err != nil {
		m.restore(saved)
		return nil, err
	}
	return rec, nil
}

func (m *memoryStore) apply(in dto.CheckoutInput) (*enrollModel.EnrollmentModel, error) {
	class, ok := m.classes[in.ClassID]
	if !ok {
		return nil, repository.ErrClassNotFound
	}
	if class.Seats <= 0 {
		return nil, repository.ErrSeatsExhausted
	}
	class.Seats--
	class.EnrolledStudents++
	m.classes[in.ClassID] = class

	n, ok := m.instructors[class.Email]
	if !ok {
		return nil, repository.ErrInstructorNotFound
	}
	m.instructors[class.Email] = n + 1

	rec := enrollModel.EnrollmentModel{
		ID:            uuid.New(),
		Email:         in.Email,
		ClassID:       class.ID,
		Name:          class.Name,
		Price:         class.Price,
		TransactionID: in.TransactionID,
		ClassSnapshot: datatypes.JSONMap(class.Snapshot()),
		CreatedAt:     time.Now(),
	}
	m.enrollments = append(m.enrollments, rec)

	if _, ok := m.carts[in.CartItemID]; !ok {
		return nil, repository.ErrCartItemNotFound
	}
	delete(m.carts, in.CartItemID)
	return &rec, nil
}

func (m *memoryStore) FindByID(_ context.Context, id uuid.UUID) (*classModel.ClassModel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.classes[id]
	if !ok {
		return nil, classRepo.ErrNotFound
	}
	return &c, nil
}
