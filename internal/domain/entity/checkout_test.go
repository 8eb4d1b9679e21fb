package entity_test

import (
	"testing"
	"time"

	"darkstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact() entity.CheckoutContact {
	return entity.CheckoutContact{
		Name:  "Анна",
		Email: "anna@example.com",
		Phone: "+79990001122",
	}
}

func validDelivery() entity.CheckoutDelivery {
	return entity.CheckoutDelivery{
		City:    "Москва",
		Address: "ул. Тверская, 1",
	}
}

func TestNewCheckoutSession_StampsOwnCreationTime(t *testing.T) {
	session := entity.NewCheckoutSession(uuid.New())

	assert.WithinDuration(t, time.Now().UTC(), session.CreatedAt, time.Second,
		"a restarted checkout must not inherit a prior run's creation time")
}

func TestCheckoutSession_FullForwardWalk(t *testing.T) {
	session := entity.NewCheckoutSession(uuid.New())
	assert.Equal(t, entity.CheckoutStepInfo, session.Step)

	require.True(t, session.SubmitInfo(validContact()))
	assert.Equal(t, entity.CheckoutStepDelivery, session.Step)

	require.True(t, session.SubmitDelivery(validDelivery()))
	assert.Equal(t, entity.CheckoutStepPayment, session.Step)

	session.MarkSuccess()
	assert.Equal(t, entity.CheckoutStepSuccess, session.Step)
	assert.Empty(t, session.FailureReason)
}

func TestCheckoutSession_SubmitInfo_RequiresAllFields(t *testing.T) {
	tests := []struct {
		name    string
		contact entity.CheckoutContact
	}{
		{"missing name", entity.CheckoutContact{Email: "anna@example.com", Phone: "+79990001122"}},
		{"missing email", entity.CheckoutContact{Name: "Анна", Phone: "+79990001122"}},
		{"missing phone", entity.CheckoutContact{Name: "Анна", Email: "anna@example.com"}},
		{"blank name", entity.CheckoutContact{Name: "   ", Email: "anna@example.com", Phone: "+79990001122"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := entity.NewCheckoutSession(uuid.New())

			assert.False(t, session.SubmitInfo(tt.contact))
			assert.Equal(t, entity.CheckoutStepInfo, session.Step)
		})
	}
}

func TestCheckoutSession_SubmitInfo_TelegramIsOptional(t *testing.T) {
	session := entity.NewCheckoutSession(uuid.New())
	contact := validContact()
	contact.Telegram = ""

	assert.True(t, session.SubmitInfo(contact))
}

func TestCheckoutSession_SubmitDelivery_WrongStep(t *testing.T) {
	session := entity.NewCheckoutSession(uuid.New())

	assert.False(t, session.SubmitDelivery(validDelivery()))
	assert.Equal(t, entity.CheckoutStepInfo, session.Step)
}

func TestCheckoutSession_Back_KeepsEnteredData(t *testing.T) {
	session := entity.NewCheckoutSession(uuid.New())
	require.True(t, session.SubmitInfo(validContact()))
	require.True(t, session.SubmitDelivery(validDelivery()))

	require.True(t, session.Back())
	assert.Equal(t, entity.CheckoutStepDelivery, session.Step)
	assert.Equal(t, "Москва", session.Delivery.City)

	require.True(t, session.Back())
	assert.Equal(t, entity.CheckoutStepInfo, session.Step)
	assert.Equal(t, "Анна", session.Contact.Name)

	assert.False(t, session.Back())
}

func TestCheckoutSession_FailedAndRetry(t *testing.T) {
	session := entity.NewCheckoutSession(uuid.New())
	require.True(t, session.SubmitInfo(validContact()))
	require.True(t, session.SubmitDelivery(validDelivery()))

	session.MarkFailed("Не удалось создать платёж")
	assert.Equal(t, entity.CheckoutStepFailed, session.Step)
	assert.Equal(t, "Не удалось создать платёж", session.FailureReason)

	require.True(t, session.Retry())
	assert.Equal(t, entity.CheckoutStepPayment, session.Step)
	assert.Empty(t, session.FailureReason)
}

func TestCheckoutSession_Retry_OnlyFromFailed(t *testing.T) {
	session := entity.NewCheckoutSession(uuid.New())

	assert.False(t, session.Retry())
	assert.Equal(t, entity.CheckoutStepInfo, session.Step)
}

func TestCheckoutSession_FullAddress(t *testing.T) {
	session := entity.NewCheckoutSession(uuid.New())
	require.True(t, session.SubmitInfo(validContact()))
	require.True(t, session.SubmitDelivery(validDelivery()))

	assert.Equal(t, "Москва, ул. Тверская, 1", session.FullAddress())
}

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"new", "processing", "shipped", "delivered"} {
		status, ok := entity.ParseOrderStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, entity.OrderStatus(valid), status)
	}

	status, ok := entity.ParseOrderStatus("completed")
	assert.True(t, ok)
	assert.Equal(t, entity.OrderStatusDelivered, status)

	_, ok = entity.ParseOrderStatus("teleported")
	assert.False(t, ok)
}

func TestParseAnalyticsEventType(t *testing.T) {
	eventType, ok := entity.ParseAnalyticsEventType("page_view")
	assert.True(t, ok)
	assert.Equal(t, entity.AnalyticsEventPageView, eventType)

	eventType, ok = entity.ParseAnalyticsEventType("add_to_cart")
	assert.True(t, ok)
	assert.Equal(t, entity.AnalyticsEventAddToCart, eventType)

	_, ok = entity.ParseAnalyticsEventType("mouse_moved")
	assert.False(t, ok)
}
