package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"threadline/web/internal/model"
)

func TestPrintNew(t *testing.T) {
	at := time.Date(2025, 6, 1, 8, 0, 0, 0, time.Local)
	seen := make(map[string]bool)
	var out bytes.Buffer

	printNew(&out, []model.Message{
		{ID: 10, SenderID: 7, Sender: &model.Participant{Name: "Ada"}, Body: "Hello", CreatedAt: at},
		{SenderID: 8, Body: "On it", CreatedAt: at, ClientID: "temp-1", Provisional: true},
	}, seen)
	assert.Equal(t, "[08:00] Ada: Hello\n[08:00] 8: On it (sending)\n", out.String())

	out.Reset()
	printNew(&out, []model.Message{
		{ID: 10, SenderID: 7, Sender: &model.Participant{Name: "Ada"}, Body: "Hello", CreatedAt: at},
		{ID: 11, SenderID: 8, Body: "On it", CreatedAt: at},
	}, seen)
	assert.Equal(t, "[08:00] 8: On it\n", out.String())
}
