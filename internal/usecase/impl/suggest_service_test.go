package impl

import (
	"context"
	"testing"

	mockSvc "darkstore/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestService_SuggestAddresses(t *testing.T) {
	suggester := mockSvc.NewMockAddressSuggester(t)
	service := NewSuggestService(suggester, discardLogger())

	ctx := context.Background()
	values := []string{"г Москва, ул Тверская", "г Москва, ул Тверская-Ямская"}

	suggester.EXPECT().Suggest(ctx, "Тверская", 5).Return(values, nil)

	got, err := service.SuggestAddresses(ctx, "  Тверская ", 5)

	require.NoError(t, err)
	assert.Equal(t, values, got)
}

func TestSuggestService_SuggestAddresses_ShortQuery(t *testing.T) {
	suggester := mockSvc.NewMockAddressSuggester(t)
	service := NewSuggestService(suggester, discardLogger())

	got, err := service.SuggestAddresses(context.Background(), "ул", 5)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestSuggestService_SuggestAddresses_ProviderError(t *testing.T) {
	suggester := mockSvc.NewMockAddressSuggester(t)
	service := NewSuggestService(suggester, discardLogger())

	ctx := context.Background()

	suggester.EXPECT().Suggest(ctx, "Тверская", 5).Return(nil, errors.New("quota exceeded"))

	got, err := service.SuggestAddresses(ctx, "Тверская", 5)

	assert.Nil(t, got)
	assert.Error(t, err)
}

func TestSuggestService_SuggestAddresses_NilFromProvider(t *testing.T) {
	suggester := mockSvc.NewMockAddressSuggester(t)
	service := NewSuggestService(suggester, discardLogger())

	ctx := context.Background()

	suggester.EXPECT().Suggest(ctx, "Невский", 3).Return(nil, nil)

	got, err := service.SuggestAddresses(ctx, "Невский", 3)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
