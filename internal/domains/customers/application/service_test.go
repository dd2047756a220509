package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ordermanager/order-manager-api/internal/domains/customers/domain"
	"github.com/ordermanager/order-manager-api/internal/domains/customers/ports"
	"github.com/ordermanager/order-manager-api/internal/shared/validation"
)

type fakeCustomerRepo struct {
	customers map[int]*domain.Customer
	nextID    int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[int]*domain.Customer{}}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	f.nextID++
	customer.ID = f.nextID
	f.customers[customer.ID] = customer
	return customer, nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int) (*domain.Customer, error) {
	if c, ok := f.customers[id]; ok {
		return c, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeCustomerRepo) List(_ context.Context) ([]*domain.Customer, error) {
	var out []*domain.Customer
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *domain.Customer) error {
	if _, ok := f.customers[customer.ID]; !ok {
		return ports.ErrNotFound
	}
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.customers[id]; !ok {
		return ports.ErrNotFound
	}
	delete(f.customers, id)
	return nil
}

type fakeOrderChecker struct {
	owning map[int]bool
}

func (f *fakeOrderChecker) ExistsForCustomer(_ context.Context, customerID int) (bool, error) {
	return f.owning[customerID], nil
}

func newCustomerService() (*Service, *fakeCustomerRepo, *fakeOrderChecker) {
	repo := newFakeCustomerRepo()
	orders := &fakeOrderChecker{owning: map[int]bool{}}
	return NewService(repo, orders), repo, orders
}

func TestCreateCustomer(t *testing.T) {
	svc, _, _ := newCustomerService()

	created, err := svc.Create(context.Background(), ports.CustomerInput{
		FirstName: "Jan",
		LastName:  "Kowalski",
		Email:     "jan.kowalski@example.com",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
}

func TestCreateCustomer_RejectsEmptyFirstName(t *testing.T) {
	svc, _, _ := newCustomerService()

	_, err := svc.Create(context.Background(), ports.CustomerInput{
		FirstName: "  ",
		LastName:  "Kowalski",
		Email:     "jan.kowalski@example.com",
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	var msg *validation.Message
	require.True(t, errors.As(err, &msg))
	require.Equal(t, "CUSTOMER_FIRST_NAME_CANNOT_BE_EMPTY", msg.Code)
}

func TestCreateCustomer_RejectsOverlongLastName(t *testing.T) {
	svc, _, _ := newCustomerService()

	_, err := svc.Create(context.Background(), ports.CustomerInput{
		FirstName: "Jan",
		LastName:  strings.Repeat("x", 101),
		Email:     "jan.kowalski@example.com",
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	var msg *validation.Message
	require.True(t, errors.As(err, &msg))
	require.Equal(t, "CUSTOMER_LAST_NAME_TOO_LONG", msg.Code)
}

func TestCreateCustomer_RejectsInvalidEmail(t *testing.T) {
	svc, _, _ := newCustomerService()

	for _, email := range []string{"", "a@a", "a@@a.pl", "jan@.pl", "jan@example.", "jan@exa..mple.pl", "jan.example.pl"} {
		_, err := svc.Create(context.Background(), ports.CustomerInput{
			FirstName: "Jan",
			LastName:  "Kowalski",
			Email:     email,
		})
		require.ErrorIs(t, err, ErrInvalidInput, "email %q", email)
	}
}

func TestUpdateCustomer_NotFound(t *testing.T) {
	svc, _, _ := newCustomerService()

	_, err := svc.Update(context.Background(), ports.CustomerInput{
		ID:        99,
		FirstName: "Jan",
		LastName:  "Kowalski",
		Email:     "jan.kowalski@example.com",
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCustomer_RejectedWithOrders(t *testing.T) {
	svc, _, orders := newCustomerService()

	created, err := svc.Create(context.Background(), ports.CustomerInput{
		FirstName: "Jan",
		LastName:  "Kowalski",
		Email:     "jan.kowalski@example.com",
	})
	require.NoError(t, err)
	orders.owning[created.ID] = true

	err = svc.Delete(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrInvalidInput)

	var msg *validation.Message
	require.True(t, errors.As(err, &msg))
	require.Equal(t, "CUSTOMER_CANNOT_DELETE_WITH_ORDERS", msg.Code)
}

func TestDeleteCustomer_WithoutOrders(t *testing.T) {
	svc, repo, _ := newCustomerService()

	created, err := svc.Create(context.Background(), ports.CustomerInput{
		FirstName: "Jan",
		LastName:  "Kowalski",
		Email:     "jan.kowalski@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	_, err = repo.GetByID(context.Background(), created.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
