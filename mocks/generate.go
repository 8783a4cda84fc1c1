package mocks

//go:generate mockgen -destination=./mock_market.go -package=mocks github.com/rxtech-lab/argo-maker/internal/market Context
