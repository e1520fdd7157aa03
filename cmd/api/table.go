package main

import (
	"strconv"

	"biblicalman-api/core/domain"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const titleWidth = 48

func renderArticles(articles []domain.Article) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Title", "Category", "Published", "Read"})

	for i, a := range articles {
		tw.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			a.Title,
			a.Category,
			a.PublishedDate,
			strconv.Itoa(a.ReadTimeMinutes) + " min",
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, WidthMax: titleWidth},
		{Number: 5, Align: text.AlignRight},
	})
	return tw.Render()
}

func renderInsight(article domain.Article, insight domain.Insight) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(article.Title)
	tw.AppendRows([]table.Row{
		{"Core principle", insight.CorePrinciple},
		{"Action item", insight.ActionItem},
		{"Reflection", insight.Reflection},
	})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 72},
	})
	return tw.Render()
}
