package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	walletKey
)

// WithRequestID attaches the request id to ctx so every *Ctx log line carries it
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the request id attached to ctx, if any
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithWallet attaches the connected wallet address to ctx
func WithWallet(ctx context.Context, address string) context.Context {
	return context.WithValue(ctx, walletKey, address)
}

// Wallet returns the wallet address attached to ctx, if any
func Wallet(ctx context.Context) string {
	address, _ := ctx.Value(walletKey).(string)
	return address
}

func contextFields(ctx context.Context) []zap.Field {
	var fields []zap.Field
	if id := RequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if wallet := Wallet(ctx); wallet != "" {
		fields = append(fields, zap.String("wallet", wallet))
	}
	return fields
}
