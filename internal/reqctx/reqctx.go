// Package reqctx описывает контекст одного HTTP-запроса: его идентификатор
// и время поступления. Значение создаётся middleware и явно передаётся
// из обработчиков в бизнес-логику.
package reqctx

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

type RequestContext struct {
	RequestID string
	Timestamp time.Time
}

// New создаёт контекст запроса. Пустой requestID заменяется сгенерированным UUID.
func New(requestID string) RequestContext {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return RequestContext{RequestID: requestID, Timestamp: time.Now().UTC()}
}

type ctxKey struct{}

func WithRequestContext(ctx context.Context, rc RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext возвращает сохранённый контекст запроса. Если его нет
// (например, вызов вне HTTP), создаётся новый.
func FromContext(ctx context.Context) RequestContext {
	if rc, ok := ctx.Value(ctxKey{}).(RequestContext); ok {
		return rc
	}
	return New("")
}
