package app

import (
	"testing"

	"github.com/cleitonmarx/symbiont-travel-advisor/internal/adapters/inbound/oneshot"
	"github.com/stretchr/testify/require"
)

func TestNewTravelAdvisorApp_Initializers(t *testing.T) {
	app := NewTravelAdvisorApp()
	require.NotNil(t, app, "NewTravelAdvisorApp should not return nil")
}

func TestOneShotApps_Initializers(t *testing.T) {
	require.NotNil(t, NewIndexApp(make(chan oneshot.Result, 1)))
	require.NotNil(t, NewAskApp(&oneshot.QuestionAnswerer{Question: "Where is Gibraltar?"}))
	require.NotNil(t, NewMCPApp())
}
