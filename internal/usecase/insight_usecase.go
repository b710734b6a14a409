package usecase

import (
	"context"
	"fmt"

	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// GenerateInsights собирает числовую сводку по складу, строит из неё промпт
// и получает текстовый анализ у внешнего генератора. Текст кэшируется по
// отпечатку метрик: пока цифры не изменились, повторный поход наружу не нужен.
// Сами метрики не кэшируются никогда. При недоступности генератора метрики
// всё равно возвращаются вызывающему вместе с ошибкой.
func (u *InventoryUseCase) GenerateInsights(ctx context.Context) (*InsightRes, error) {
	const op = "InventoryUseCase.GenerateInsights"

	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	now := u.now()
	metrics := InsightMetrics{TotalProducts: int64(len(products))}
	for _, p := range products {
		if p.IsOutOfStock() {
			metrics.OutOfStockCount++
		}
		if p.IsLowStock() {
			metrics.LowStockCount++
		}
		if p.IsDeadStock(now, u.cfg.DeadStockWindow) {
			metrics.DeadStockCount++
			metrics.DeadStockValue += p.StockValue()
		}
		metrics.TotalValue += p.StockValue()
	}

	cacheKey := insightCacheKey(metrics)
	if cached, err := u.cacheRepo.GetInsight(ctx, cacheKey); err != nil {
		u.logger.Warnf("Insight cache read failed: %v", e.Wrap(op, err))
	} else if cached != "" {
		return &InsightRes{Insights: cached, Metrics: metrics, GeneratedAt: now, Cached: true}, nil
	}

	text, err := u.insight.GenerateInsightText(ctx, buildInsightPrompt(metrics))
	if err != nil {
		// Метрики уже посчитаны, генератор их не трогает: отдаём их вместе с ошибкой.
		return &InsightRes{Metrics: metrics, GeneratedAt: now}, e.Wrap(op, err)
	}

	if err := u.cacheRepo.SetInsight(ctx, cacheKey, text); err != nil {
		u.logger.Warnf("Insight cache write failed: %v", e.Wrap(op, err))
	}

	return &InsightRes{Insights: text, Metrics: metrics, GeneratedAt: now}, nil
}

// insightCacheKey — детерминированный отпечаток метрик, породивших промпт.
func insightCacheKey(m InsightMetrics) string {
	return fmt.Sprintf("%d:%d:%d:%d:%d:%d",
		m.TotalProducts, m.OutOfStockCount, m.LowStockCount,
		m.DeadStockCount, m.TotalValue, m.DeadStockValue)
}

// buildInsightPrompt — формулировка промпта. Это представление, а не логика:
// вся содержательная часть — цифры из metrics.
func buildInsightPrompt(m InsightMetrics) string {
	return fmt.Sprintf(`You are an inventory management expert for an AEC materials business in India. Analyze this data and provide a clear, well-formatted analysis:

INVENTORY OVERVIEW:
- Total Products: %d
- Out of Stock: %d (URGENT)
- Low Stock: %d (needs reorder)
- Dead Stock: %d (no sales 30+ days)
- Total Value: ₹%s
- Dead Stock Value: ₹%s

Please provide a structured analysis with these sections:

HEALTH SCORE: Rate from 1-10 with a brief explanation

TOP 3 IMMEDIATE ACTIONS:
1. [First action with specific details]
2. [Second action with expected benefit]
3. [Third action with rationale]

OPTIMIZATION STRATEGY:
[One key strategy to improve inventory management]

CRITICAL WARNINGS:
[Any urgent issues that need immediate attention, or "None" if all is well]

Keep your response clear, direct, and actionable. Use simple formatting.`,
		m.TotalProducts, m.OutOfStockCount, m.LowStockCount, m.DeadStockCount,
		formatRupees(m.TotalValue), formatRupees(m.DeadStockValue))
}

// formatRupees переводит пайсы в строку рупий для текста промпта.
func formatRupees(paise int64) string {
	return decimal.NewFromInt(paise).Div(decimal.NewFromInt(100)).StringFixed(2)
}
