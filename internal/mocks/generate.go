// Package mocks provides mock implementations for testing the dashboard services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the core interfaces. To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/foodbot-ai/dashboard-api/internal/core UserRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=restaurant_repository_mock.go github.com/foodbot-ai/dashboard-api/internal/core RestaurantRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=selection_repository_mock.go github.com/foodbot-ai/dashboard-api/internal/core SelectionRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=webhook_caller_mock.go github.com/foodbot-ai/dashboard-api/internal/core WebhookCaller

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=session_store_mock.go github.com/foodbot-ai/dashboard-api/internal/core SessionStore
