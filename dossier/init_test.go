package dossier_test

import (
	"context"

	"github.com/9seconds/ipdossier/dossier"
	"github.com/stretchr/testify/mock"
)

type ProviderMock struct {
	mock.Mock
}

func (m *ProviderMock) Lookup(ctx context.Context, target string) (dossier.Observation, error) {
	args := m.Called(ctx, target)

	return args.Get(0).(dossier.Observation), args.Error(1)
}

func (m *ProviderMock) Name() string {
	return m.Called().String(0)
}

type KnowledgeGraphMock struct {
	mock.Mock
}

func (m *KnowledgeGraphMock) Name() string {
	return m.Called().String(0)
}

func (m *KnowledgeGraphMock) Labels() []string {
	return m.Called().Get(0).([]string)
}

func (m *KnowledgeGraphMock) Lookup(ctx context.Context, countryCode string) ([]dossier.Field, error) {
	args := m.Called(ctx, countryCode)

	return args.Get(0).([]dossier.Field), args.Error(1)
}

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) LookupError(target, name string, err error) {
	m.Called(target, name, err)
}

func (m *LoggerMock) EnrichError(countryCode, name string, err error) {
	m.Called(countryCode, name, err)
}
