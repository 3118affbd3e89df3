// internal/service/learner_service_test.go
package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go_5_flash_keep/internal/model"
	"go_5_flash_keep/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// 送信内容を記録するテスト用メーラー
type captureMailer struct {
	mu      sync.Mutex
	sendErr error
	sent    []string // 宛先のリスト
}

func (m *captureMailer) Send(_ context.Context, to, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, to)
	return nil
}

func Test_learnerService_RegisterLearner(t *testing.T) {
	ctx := context.Background()
	testEmail := "taro@example.com"

	tests := []struct {
		name        string
		req         *model.RegisterLearnerRequest
		setupMock   func(repo *mocks.LearnerRepository)
		mailerErr   error
		wantErr     error
		wantLearner bool
		wantMails   int
	}{
		{
			name: "正常系: 登録してウェルカムメールを送る",
			req:  &model.RegisterLearnerRequest{Name: "山田太郎", Email: testEmail},
			setupMock: func(repo *mocks.LearnerRepository) {
				repo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), testEmail).
					Return(nil, model.ErrNotFound).Once()
				repo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Learner")).
					Run(func(args mock.Arguments) {
						learner := args.Get(2).(*model.Learner)
						assert.Equal(t, "山田太郎", learner.Name)
						assert.True(t, learner.IsActive)
						assert.NotEqual(t, uuid.Nil, learner.LearnerID)
					}).Return(nil).Once()
			},
			wantLearner: true,
			wantMails:   1,
		},
		{
			name: "正常系: メール送信失敗でも登録は成功する",
			req:  &model.RegisterLearnerRequest{Name: "山田太郎", Email: testEmail},
			setupMock: func(repo *mocks.LearnerRepository) {
				repo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), testEmail).
					Return(nil, model.ErrNotFound).Once()
				repo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Learner")).
					Return(nil).Once()
			},
			mailerErr:   errors.New("ses throttled"),
			wantLearner: true,
			wantMails:   0,
		},
		{
			name: "異常系: メールアドレス重複はConflict",
			req:  &model.RegisterLearnerRequest{Name: "別人", Email: testEmail},
			setupMock: func(repo *mocks.LearnerRepository) {
				existing := &model.Learner{LearnerID: uuid.New(), Email: testEmail, IsActive: true}
				repo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), testEmail).
					Return(existing, nil).Once()
			},
			wantErr:     model.ErrConflict,
			wantLearner: false,
		},
		{
			name: "異常系: Create失敗",
			req:  &model.RegisterLearnerRequest{Name: "山田太郎", Email: testEmail},
			setupMock: func(repo *mocks.LearnerRepository) {
				repo.On("FindByEmail", ctx, mock.AnythingOfType("*gorm.DB"), testEmail).
					Return(nil, model.ErrNotFound).Once()
				repo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Learner")).
					Return(errors.New("insert failed")).Once()
			},
			wantLearner: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDBCard(t)
			mockRepo := new(mocks.LearnerRepository)
			tt.setupMock(mockRepo)
			mailer := &captureMailer{sendErr: tt.mailerErr}
			svc := NewLearnerService(db, mockRepo, mailer, testConfig())

			resp, err := svc.RegisterLearner(ctx, tt.req)

			if tt.wantLearner {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.Equal(t, tt.req.Email, resp.Email)
				assert.NotEqual(t, uuid.Nil, resp.LearnerID)
			} else {
				require.Error(t, err)
				assert.Nil(t, resp)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			}
			assert.Len(t, mailer.sent, tt.wantMails)
			mockRepo.AssertExpectations(t)
		})
	}
}

func Test_learnerService_Authenticate(t *testing.T) {
	ctx := context.Background()
	learnerID := uuid.New()

	tests := []struct {
		name      string
		setupMock func(repo *mocks.LearnerRepository)
		wantErr   error
	}{
		{
			name: "正常系: 有効な学習者",
			setupMock: func(repo *mocks.LearnerRepository) {
				repo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), learnerID).
					Return(&model.Learner{LearnerID: learnerID, IsActive: true}, nil).Once()
			},
			wantErr: nil,
		},
		{
			name: "異常系: 存在しない学習者",
			setupMock: func(repo *mocks.LearnerRepository) {
				repo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), learnerID).
					Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrLearnerNotFound,
		},
		{
			name: "異常系: 休眠中の学習者は認証失敗",
			setupMock: func(repo *mocks.LearnerRepository) {
				repo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), learnerID).
					Return(&model.Learner{LearnerID: learnerID, IsActive: false}, nil).Once()
			},
			wantErr: model.ErrLearnerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDBCard(t)
			mockRepo := new(mocks.LearnerRepository)
			tt.setupMock(mockRepo)
			svc := NewLearnerService(db, mockRepo, &captureMailer{}, testConfig())

			err := svc.Authenticate(ctx, learnerID)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
