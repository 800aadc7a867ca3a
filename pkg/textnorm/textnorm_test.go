// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/auralearn/aura/pkg/textnorm"
)

/*
TestFold checks lowercase folding and accent stripping on French input.
*/
func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain_ascii", "Grammaire", "grammaire"},
		{"accents", "Compréhension écrite", "comprehension ecrite"},
		{"cedilla", "Français", "francais"},
		{"uppercase_accents", "ÉCOUTÉ", "ecoute"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textnorm.Fold(tt.input))
		})
	}
}

/*
TestContainsFold checks substring matching across case and accents.
*/
func TestContainsFold(t *testing.T) {
	assert.True(t, textnorm.ContainsFold("Grammaire de base", "GRAMM"))
	assert.True(t, textnorm.ContainsFold("Préparation au TCF", "preparation"))
	assert.True(t, textnorm.ContainsFold("anything", ""))
	assert.False(t, textnorm.ContainsFold("Expression orale", "grammaire"))
}
