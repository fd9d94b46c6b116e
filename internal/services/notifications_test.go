package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pixelift/pixelift-api/internal/models"
)

func TestNotifier_AfterDebit(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "ann@example.com", Name: "Ann"}

	tests := []struct {
		name     string
		balance  int
		cost     int
		template string
	}{
		{name: "plenty left", balance: 98, cost: 2},
		{name: "at threshold", balance: 3, cost: 2},
		{name: "low", balance: 2, cost: 2, template: models.EmailLowCredits},
		{name: "one left", balance: 1, cost: 1, template: models.EmailLowCredits},
		{name: "depleted", balance: 0, cost: 2, template: models.EmailCreditsDepleted},
		{name: "free operation at zero", balance: 0, cost: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sender := NewMockEmailSender(ctrl)
			if tt.template != "" {
				sender.EXPECT().
					Send(gomock.Any(), "ann@example.com", tt.template, models.EmailData{Name: "Ann", Credits: tt.balance, AppURL: "https://pixelift.pl"}).
					Return(nil)
			}

			n := NewNotifier(sender, "https://pixelift.pl", 3, time.Second)
			n.AfterDebit(user, tt.balance, tt.cost)
			n.Wait()
		})
	}
}

func TestNotifier_FirstUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := NewMockEmailSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), "ann@example.com", models.EmailFirstUpload, gomock.Any()).Return(nil)

	n := NewNotifier(sender, "", 3, time.Second)
	n.FirstUpload(&models.User{Email: "ann@example.com"}, 5)
	n.Wait()
}

func TestNotifier_ErrorsAreSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := NewMockEmailSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any(), models.EmailCreditsDepleted, gomock.Any()).Return(errors.New("resend down"))

	n := NewNotifier(sender, "", 3, time.Second)
	n.CreditsDepleted(&models.User{Email: "ann@example.com"})
	n.Wait()
}

func TestNotifier_NilSender(t *testing.T) {
	n := NewNotifier(nil, "", 3, time.Second)
	n.CreditsDepleted(&models.User{Email: "ann@example.com"})
	n.Wait()
}
