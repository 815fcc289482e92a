package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewCacheDisabledNoOps(t *testing.T) {
	InitViewCache("") // empty addr leaves caching off

	_, ok := GetCachedView(context.Background(), ViewDashboard, 1)
	assert.False(t, ok)

	assert.NotPanics(t, func() {
		SetCachedView(context.Background(), ViewMeals, 1, []byte(`{}`))
		InvalidateViews(1, ViewDashboard, ViewPlans, ViewMeals)
	})
}

func TestViewKeyIsPerUserAndView(t *testing.T) {
	assert.Equal(t, "view:plans:7", viewKey(ViewPlans, 7))
	assert.NotEqual(t, viewKey(ViewPlans, 7), viewKey(ViewPlans, 8))
	assert.NotEqual(t, viewKey(ViewPlans, 7), viewKey(ViewMeals, 7))
}
