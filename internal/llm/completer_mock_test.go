package llm

import (
	"context"
	"sync"
)

var _ Completer = &completerMock{}

type completerMock struct {
	CompleteFunc func(ctx context.Context, prompt string, maxTokens int) (string, error)

	calls struct {
		Complete []struct {
			Ctx       context.Context
			Prompt    string
			MaxTokens int
		}
	}
	lockComplete sync.RWMutex
}

func (mock *completerMock) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if mock.CompleteFunc == nil {
		panic("completerMock.CompleteFunc: method is nil but Completer.Complete was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Prompt    string
		MaxTokens int
	}{Ctx: ctx, Prompt: prompt, MaxTokens: maxTokens}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, prompt, maxTokens)
}

func (mock *completerMock) CompleteCalls() []struct {
	Ctx       context.Context
	Prompt    string
	MaxTokens int
} {
	mock.lockComplete.RLock()
	calls := mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}
