package ports

import "go.trai.ch/florist/internal/core/domain"

// Stage identifies which bouquet listing is being shown.
type Stage int

const (
	// StageUnsorted is the bouquet as loaded.
	StageUnsorted Stage = iota
	// StageSorted is the bouquet after sorting by freshness.
	StageSorted
)

// Renderer is the abstraction for presenting the flow's results to the user.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnBouquet shows a full bouquet listing for the given stage.
	OnBouquet(stage Stage, bouquet *domain.Bouquet)

	// OnRange announces the stem length range about to be searched.
	OnRange(minLength, maxLength int)

	// OnMatches lists the flowers found in the announced range.
	OnMatches(flowers []domain.Flower)

	// OnFailure reports an error the user caused, such as a rejected value.
	OnFailure(err error)

	// MinPrompt and MaxPrompt return the prompts for the two range bounds.
	MinPrompt() string
	MaxPrompt() string
}
