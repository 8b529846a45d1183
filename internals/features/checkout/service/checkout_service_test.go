package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"summerschool_backend/internals/features/checkout/dto"
	helper "summerschool_backend/internals/helpers"
)

const instructor = "teacher@x.com"

func kindOf(err error) string {
	var ae *helper.AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

func TestCheckoutSuccess(t *testing.T) {
	store := newMemoryStore()
	store.instructors[instructor] = 0
	classID := store.addClass(3, instructor)
	cartID := store.addCart("kid@x.com", classID)
	svc := NewCheckoutService(store, store, nil)

	res, err := svc.Checkout(context.Background(), dto.CheckoutInput{
		CartItemID: cartID, ClassID: classID, Email: "kid@x.com", TransactionID: "tx-1",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if !res.Acknowledged || res.DeletedCount != 1 || res.EnrollmentID == "" {
		t.Fatalf("result = %+v", res)
	}

	class := store.classes[classID]
	if class.Seats != 2 || class.EnrolledStudents != 1 {
		t.Fatalf("class = %+v", class)
	}
	if store.instructors[instructor] != 1 {
		t.Fatalf("instructor count = %d", store.instructors[instructor])
	}
	if len(store.carts) != 0 || len(store.enrollments) != 1 {
		t.Fatalf("carts=%d enrollments=%d", len(store.carts), len(store.enrollments))
	}
	rec := store.enrollments[0]
	if rec.TransactionID != "tx-1" || rec.ClassSnapshot["name"] != "Pottery" {
		t.Fatalf("record = %+v", rec)
	}
}

func TestCheckoutFailuresLeaveNoTrace(t *testing.T) {
	cases := []struct {
		name  string
		setup func(m *memoryStore) dto.CheckoutInput
		kind  string
	}{
		{
			name: "no seats",
			setup: func(m *memoryStore) dto.CheckoutInput {
				m.instructors[instructor] = 4
				c := m.addClass(0, instructor)
				return dto.CheckoutInput{ClassID: c, CartItemID: m.addCart("kid@x.com", c), Email: "kid@x.com"}
			},
			kind: helper.KindSeatsExhausted,
		},
		{
			name: "missing class",
			setup: func(m *memoryStore) dto.CheckoutInput {
				return dto.CheckoutInput{ClassID: uuid.New(), CartItemID: m.addCart("kid@x.com", uuid.New()), Email: "kid@x.com"}
			},
			kind: helper.KindNotFound,
		},
		{
			name: "missing instructor",
			setup: func(m *memoryStore) dto.CheckoutInput {
				c := m.addClass(2, "ghost@x.com")
				return dto.CheckoutInput{ClassID: c, CartItemID: m.addCart("kid@x.com", c), Email: "kid@x.com"}
			},
			kind: helper.KindNotFound,
		},
		{
			name: "unknown cart item",
			setup: func(m *memoryStore) dto.CheckoutInput {
				m.instructors[instructor] = 4
				c := m.addClass(2, instructor)
				return dto.CheckoutInput{ClassID: c, CartItemID: uuid.New(), Email: "kid@x.com"}
			},
			kind: helper.KindNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemoryStore()
			in := tc.setup(store)
			before := store.save()

			_, err := NewCheckoutService(store, store, nil).Checkout(context.Background(), in)
			if got := kindOf(err); got != tc.kind {
				t.Fatalf("kind = %q (%v), want %q", got, err, tc.kind)
			}

			if len(store.enrollments) != 0 || len(store.carts) != len(before.carts) {
				t.Fatalf("partial write: enrollments=%d carts=%d", len(store.enrollments), len(store.carts))
			}
			for id, c := range before.classes {
				if store.classes[id] != c {
					t.Fatalf("class changed: %+v -> %+v", c, store.classes[id])
				}
			}
			if store.instructors[instructor] != before.instructors[instructor] {
				t.Fatalf("instructor changed")
			}
		})
	}
}

func TestCheckoutLastSeatRace(t *testing.T) {
	store := newMemoryStore()
	store.instructors[instructor] = 0
	classID := store.addClass(1, instructor)
	carts := []uuid.UUID{store.addCart("a@x.com", classID), store.addCart("b@x.com", classID)}
	svc := NewCheckoutService(store, store, nil)

	errs := make([]error, len(carts))
	var wg sync.WaitGroup
	for i, cartID := range carts {
		wg.Add(1)
		go func(i int, cartID uuid.UUID) {
			defer wg.Done()
			_, errs[i] = svc.Checkout(context.Background(), dto.CheckoutInput{CartItemID: cartID, ClassID: classID, Email: "x@x.com"})
		}(i, cartID)
	}
	wg.Wait()

	var ok, full int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case kindOf(err) == helper.KindSeatsExhausted:
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != 1 || full != 1 {
		t.Fatalf("ok=%d full=%d", ok, full)
	}
	if c := store.classes[classID]; c.Seats != 0 || c.EnrolledStudents != 1 {
		t.Fatalf("class = %+v", c)
	}
	if len(store.enrollments) != 1 || len(store.carts) != 1 {
		t.Fatalf("enrollments=%d carts=%d", len(store.enrollments), len(store.carts))
	}
}

type fakeGateway struct {
	got   IntentParams
	calls int
	err   error
}

func (f *fakeGateway) CreateIntent(p IntentParams) (*dto.IntentResponse, error) {
	f.calls++
	f.got = p
	if f.err != nil {
		return nil, f.err
	}
	return &dto.IntentResponse{Token: "tok", RedirectURL: "https://pay.example/tok", OrderID: p.OrderID}, nil
}

func TestCreateIntent(t *testing.T) {
	store := newMemoryStore()
	open := store.addClass(2, instructor)
	full := store.addClass(0, instructor)
	gw := &fakeGateway{}
	svc := NewCheckoutService(store, store, gw)
	ctx := context.Background()

	res, err := svc.CreateIntent(ctx, dto.IntentRequest{ClassID: open.String(), Email: "kid@x.com", Name: "Kid"})
	if err != nil {
		t.Fatalf("intent: %v", err)
	}
	if res.Token != "tok" || res.OrderID == "" || gw.got.Amount != 50 || gw.got.ClassID != open.String() {
		t.Fatalf("res = %+v params = %+v", res, gw.got)
	}

	if _, err := svc.CreateIntent(ctx, dto.IntentRequest{ClassID: full.String(), Email: "kid@x.com"}); kindOf(err) != helper.KindSeatsExhausted {
		t.Fatalf("full class err = %v", err)
	}
	if _, err := svc.CreateIntent(ctx, dto.IntentRequest{ClassID: uuid.NewString(), Email: "kid@x.com"}); kindOf(err) != helper.KindNotFound {
		t.Fatalf("missing class err = %v", err)
	}

	fractional := store.addClass(2, instructor)
	c := store.classes[fractional]
	c.Price = 12.5
	store.classes[fractional] = c
	calls := gw.calls
	if _, err := svc.CreateIntent(ctx, dto.IntentRequest{ClassID: fractional.String(), Email: "kid@x.com"}); kindOf(err) != helper.KindBadRequest {
		t.Fatalf("fractional price err = %v", err)
	}
	if gw.calls != calls {
		t.Fatal("gateway called for a fractional price")
	}

	gw.err = errors.New("boom")
	if _, err := svc.CreateIntent(ctx, dto.IntentRequest{ClassID: open.String(), Email: "kid@x.com"}); err == nil {
		t.Fatal("gateway error swallowed")
	}

	noGateway := NewCheckoutService(store, store, nil)
	if _, err := noGateway.CreateIntent(ctx, dto.IntentRequest{ClassID: open.String()}); kindOf(err) != helper.KindUnavailable {
		t.Fatalf("no gateway err = %v", err)
	}
}

func TestBuildSnapRequest(t *testing.T) {
	req := buildSnapRequest(IntentParams{
		OrderID: "class-1", ClassID: "c1", ClassName: "Summer Robotics Camp", Amount: 150000, Email: "kid@x.com",
	})
	if req.TransactionDetails.GrossAmt != 150000 || req.TransactionDetails.OrderID != "class-1" {
		t.Fatalf("details = %+v", req.TransactionDetails)
	}
	items := *req.Items
	if len(items) != 1 || items[0].Price != 150000 || items[0].Qty != 1 {
		t.Fatalf("items = %+v", items)
	}
}
