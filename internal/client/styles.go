// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-store-keeper/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	idStyle      = lipgloss.NewStyle().Width(6).Align(lipgloss.Right).PaddingRight(1)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func renderStores(list models.StoreListResponse) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Stores (%d)", list.Count)))
	b.WriteByte('\n')

	if len(list.Stores) == 0 {
		b.WriteString(helpStyle.Render("no stores"))
	}
	for _, s := range list.Stores {
		b.WriteString(idStyle.Render(fmt.Sprint(s.ID)))
		b.WriteString(s.Name)
		b.WriteByte('\n')
	}
	b.WriteString(renderLinks(list.Previous, list.Next))

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderItems(storeID int64, list models.StoreItemListResponse) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Items of store %d (%d)", storeID, list.Count)))
	b.WriteByte('\n')

	if len(list.Items) == 0 {
		b.WriteString(helpStyle.Render("no items"))
	}
	for _, item := range list.Items {
		b.WriteString(idStyle.Render(fmt.Sprint(item.ID)))
		b.WriteString(item.Name)
		if item.Description != nil && *item.Description != "" {
			b.WriteString(helpStyle.Render(" - " + *item.Description))
		}
		b.WriteByte('\n')
	}
	b.WriteString(renderLinks(list.Previous, list.Next))

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func renderLinks(previous, next *string) string {
	var links []string
	if previous != nil {
		links = append(links, "prev: "+*previous)
	}
	if next != nil {
		links = append(links, "next: "+*next)
	}
	if len(links) == 0 {
		return ""
	}
	return "\n" + helpStyle.Render(strings.Join(links, "\n"))
}
