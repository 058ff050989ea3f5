// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-chat-client/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	var b strings.Builder

	rows := [][2]string{
		{"Приложение", "Go Chat"},
		{"Версия", info.Version()},
		{"Дата сборки", info.Date()},
		{"Коммит", info.Commit()},
	}
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(padRight(row[0]+":", 13))
		b.WriteString(row[1])
	}

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}
