package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{StatusPending, "Pending"},
		{StatusConfirmed, "Confirmed"},
		{StatusPreparing, "Preparing"},
		{StatusOutForDelivery, "Out For Delivery"},
		{StatusDelivered, "Delivered"},
		{StatusCancelled, "Cancelled"},
		{"on_hold", "On Hold"},
		{"", ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.status, func(t *testing.T) {
			assert.Equal(t, testCase.want, StatusLabel(testCase.status))
		})
	}
}

func TestStatusColor(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{StatusPending, "yellow"},
		{StatusConfirmed, "blue"},
		{StatusPreparing, "purple"},
		{StatusOutForDelivery, "orange"},
		{StatusDelivered, "green"},
		{StatusCancelled, "red"},
		{"refunded", "gray"},
		{"", "gray"},
	}

	for _, testCase := range tests {
		t.Run(testCase.status, func(t *testing.T) {
			assert.Equal(t, testCase.want, StatusColor(testCase.status))
		})
	}
}
