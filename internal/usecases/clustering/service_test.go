package clustering

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/retail-analytics/dashboard-api/infrastructure/integrator/mlservice"
	mlmocks "github.com/retail-analytics/dashboard-api/infrastructure/integrator/mlservice/mocks"
	"github.com/retail-analytics/dashboard-api/infrastructure/repository/mocks"
	"github.com/retail-analytics/dashboard-api/internal/domain"
)

func TestService_Clusters(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(ml *mlmocks.MockMLIntegrator, repo *mocks.MockClusterRepository)
		validate func(t *testing.T, report *domain.ClusterReport, err error)
	}{
		{
			name: "Serviço de ML respondendo",
			setup: func(ml *mlmocks.MockMLIntegrator, repo *mocks.MockClusterRepository) {
				ml.EXPECT().GetClusters(gomock.Any()).Return(&domain.ExternalClusterPayload{
					Entries: rawEntries(`{"customer_id":1,"Frequency":4,"Monetary":200,"cluster":2}`),
				}, nil)
			},
			validate: func(t *testing.T, report *domain.ClusterReport, err error) {
				require.NoError(t, err)
				assert.False(t, report.IsFallback())
				assert.Len(t, report.Clusters, 1)
				assert.Equal(t, 1, report.Summary.TotalCustomers)
			},
		},
		{
			name: "Serviço de ML fora do ar usa o banco",
			setup: func(ml *mlmocks.MockMLIntegrator, repo *mocks.MockClusterRepository) {
				ml.EXPECT().GetClusters(gomock.Any()).Return(nil, mlservice.ErrUpstreamUnavailable)
				repo.EXPECT().CustomerSpend(gomock.Any()).Return([]domain.CustomerSpend{
					{CustomerID: 1, TotalSpent: 15000, TotalOrders: 3},
				}, nil)
			},
			validate: func(t *testing.T, report *domain.ClusterReport, err error) {
				require.NoError(t, err)
				assert.True(t, report.IsFallback())
				require.Len(t, report.Clusters, 1)
				assert.Equal(t, domain.ClusterHighValue, report.Clusters[0].Cluster)
			},
		},
		{
			name: "Serviço e banco falhando vira ErrServiceUnavailable",
			setup: func(ml *mlmocks.MockMLIntegrator, repo *mocks.MockClusterRepository) {
				ml.EXPECT().GetClusters(gomock.Any()).Return(nil, mlservice.ErrUpstreamUnavailable)
				repo.EXPECT().CustomerSpend(gomock.Any()).Return(nil, errors.New("db down"))
			},
			validate: func(t *testing.T, report *domain.ClusterReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, ErrServiceUnavailable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ml := mlmocks.NewMockMLIntegrator(ctrl)
			repo := mocks.NewMockClusterRepository(ctrl)
			tt.setup(ml, repo)

			report, err := NewService(ml, repo).Clusters(context.Background())
			tt.validate(t, report, err)
		})
	}
}

func TestService_FallbackClusters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ml := mlmocks.NewMockMLIntegrator(ctrl)
	repo := mocks.NewMockClusterRepository(ctrl)

	repo.EXPECT().CustomerSpend(gomock.Any()).Return([]domain.CustomerSpend{}, nil)

	report, err := NewService(ml, repo).FallbackClusters(context.Background())
	require.NoError(t, err)
	assert.True(t, report.IsFallback())
	assert.NotNil(t, report.Clusters)
	assert.Zero(t, report.Summary.TotalCustomers)
}
