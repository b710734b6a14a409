package usecase

import "context"

// InsightInfra — непрозрачный генератор текста: принимает промпт, возвращает
// свободный текст. Вся логика по его наполнению остаётся на нашей стороне.
type InsightInfra interface {
	GenerateInsightText(ctx context.Context, prompt string) (string, error)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// Transactor выполняет fn в рамках одной транзакции хранилища.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
