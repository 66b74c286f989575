package main

import (
	"bytes"
	"testing"
	"time"

	"auction-market/internal/database"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestTickKeepsRefreshing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := database.NewMockService(ctrl)
	mockDB.EXPECT().GetActiveAuctions(gomock.Any()).Return(nil, nil).AnyTimes()
	db = mockDB

	t.Run("table_view", func(t *testing.T) {
		m := newTable()
		m.logBuffer = new(bytes.Buffer)

		_, cmd := m.Update(tickMsg(time.Now()))
		require.NotNil(t, cmd, "table view must schedule the next refresh")
	})

	t.Run("log_view", func(t *testing.T) {
		m := newTable()
		m.logBuffer = new(bytes.Buffer)
		m.showTable = false

		_, cmd := m.Update(tickMsg(time.Now()))
		require.NotNil(t, cmd, "log view must schedule the next refresh")
	})
}
