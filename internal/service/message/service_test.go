package message

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/domain/message"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-timekeeping-go/internal/testutil/fakes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	messages      *fakes.MessageRepository
	faqs          *fakes.FAQRepository
	announcements *fakes.AnnouncementRepository
	svc           message.MessageService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)

	f := &fixture{
		messages:      fakes.NewMessageRepository(),
		faqs:          &fakes.FAQRepository{},
		announcements: &fakes.AnnouncementRepository{},
	}
	emps := fakes.NewEmployeeRepository(employee.Employee{
		ID: "EMP001", FirstName: "Ana", LastName: "Reyes", Email: "ana@example.com",
	})
	f.svc = NewMessageService(f.messages, f.faqs, f.announcements, emps,
		clock.Fixed{At: time.Date(2025, time.March, 10, 9, 0, 0, 0, loc)})
	return f
}

func TestSendMessage_DefaultsFromEmployee(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.SendMessage(context.Background(), "EMP001", message.SendMessageRequest{
		MessageType: "Payroll",
		Text:        "  My payslip is missing RATA.  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ana Reyes", resp.Name)
	assert.Equal(t, "ana@example.com", resp.Email)
	assert.Equal(t, "My payslip is missing RATA.", resp.Text)
	assert.Equal(t, "pending", resp.Status)
	require.NotNil(t, resp.EmployeeID)
	assert.Equal(t, "EMP001", *resp.EmployeeID)
}

func TestSendMessage_KeepsProvidedContact(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.SendMessage(context.Background(), "EMP001", message.SendMessageRequest{
		Name:  "A. Reyes",
		Email: "reyes@example.org",
		Text:  "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "A. Reyes", resp.Name)
	assert.Equal(t, "reyes@example.org", resp.Email)
}

func TestSendMessage_RequiresText(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.SendMessage(context.Background(), "EMP001", message.SendMessageRequest{Text: "   "})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "text")
	assert.Empty(t, f.messages.Messages)
}

func TestSendMessage_UnknownEmployee(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.SendMessage(context.Background(), "EMP404", message.SendMessageRequest{Text: "hi"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestUpdateMessageStatus(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		action string
		want   message.Status
	}{
		{"respond", message.StatusResponded},
		{"read", message.StatusRead},
		{"archive", message.StatusPending},
		{"", message.StatusPending},
	}
	for _, c := range cases {
		t.Run(c.action, func(t *testing.T) {
			f := newFixture(t)
			sent, err := f.svc.SendMessage(ctx, "EMP001", message.SendMessageRequest{Text: "hi"})
			require.NoError(t, err)

			resp, err := f.svc.UpdateMessageStatus(ctx, sent.ID, c.action)
			require.NoError(t, err)
			assert.Equal(t, string(c.want), resp.Status)
			assert.Equal(t, c.want, f.messages.Messages[sent.ID].Status)
		})
	}
}

func TestUpdateMessageStatus_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.UpdateMessageStatus(context.Background(), "msg-404", "read")
	assert.ErrorIs(t, err, message.ErrMessageNotFound)
}

func TestListMessages_FilterByStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first, err := f.svc.SendMessage(ctx, "EMP001", message.SendMessageRequest{Text: "one"})
	require.NoError(t, err)
	_, err = f.svc.SendMessage(ctx, "EMP001", message.SendMessageRequest{Text: "two"})
	require.NoError(t, err)
	_, err = f.svc.UpdateMessageStatus(ctx, first.ID, "read")
	require.NoError(t, err)

	all, err := f.svc.ListMessages(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "two", all[0].Text)

	pending, err := f.svc.ListMessages(ctx, "pending")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "two", pending[0].Text)

	unknown, err := f.svc.ListMessages(ctx, "bogus")
	require.NoError(t, err)
	assert.Len(t, unknown, 2)
}

func TestCreateFAQ_DefaultsToGeneral(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.CreateFAQ(context.Background(), message.CreateFAQRequest{
		Question: "Where do I file?",
		Answer:   "At HR.",
	})
	require.NoError(t, err)
	assert.Equal(t, "General", resp.Category)
}

func TestCreateFAQ_RequiresQuestionAndAnswer(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateFAQ(context.Background(), message.CreateFAQRequest{Question: " "})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "question")
	assert.Contains(t, m, "answer")
}

func TestGetHelp_GroupsInCategoryOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, req := range []message.CreateFAQRequest{
		{Question: "q1", Answer: "a1", Category: "Payroll"},
		{Question: "q2", Answer: "a2", Category: "Leave Policies"},
		{Question: "q3", Answer: "a3", Category: "Payroll"},
		{Question: "q4", Answer: "a4"},
	} {
		_, err := f.svc.CreateFAQ(ctx, req)
		require.NoError(t, err)
	}
	hidden, err := f.svc.CreateFAQ(ctx, message.CreateFAQRequest{Question: "q5", Answer: "a5", Category: "Benefits"})
	require.NoError(t, err)
	require.NoError(t, f.svc.DeactivateFAQ(ctx, hidden.ID))

	help, err := f.svc.GetHelp(ctx)
	require.NoError(t, err)

	require.Len(t, help.Categories, 3)
	assert.Equal(t, "Leave Policies", help.Categories[0].Category)
	assert.Equal(t, "Payroll", help.Categories[1].Category)
	assert.Len(t, help.Categories[1].FAQs, 2)
	assert.Equal(t, "General", help.Categories[2].Category)
}

func TestDeactivateFAQ_NotFound(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.svc.DeactivateFAQ(context.Background(), "faq-9"), message.ErrFAQNotFound)
}

func TestAnnouncements(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.svc.CreateAnnouncement(ctx, message.CreateAnnouncementRequest{
		Title: "Holiday", Body: "Office closed", Date: "2025-04-09",
	})
	require.NoError(t, err)
	require.NotNil(t, first.Date)
	assert.Equal(t, "2025-04-09", *first.Date)

	for _, title := range []string{"B", "C", "D"} {
		_, err := f.svc.CreateAnnouncement(ctx, message.CreateAnnouncementRequest{Title: title, Body: "x"})
		require.NoError(t, err)
	}

	latest, err := f.svc.ListAnnouncements(ctx, 3)
	require.NoError(t, err)
	require.Len(t, latest, 3)
	assert.Equal(t, "D", latest[0].Title)
	assert.Nil(t, latest[0].Date)

	require.NoError(t, f.svc.DeactivateAnnouncement(ctx, first.ID))
	all, err := f.svc.ListAnnouncements(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCreateAnnouncement_Invalid(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateAnnouncement(context.Background(), message.CreateAnnouncementRequest{
		Title: "T", Body: "B", Date: "09/04/2025",
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "date")
}

func TestGetBoard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.SendMessage(ctx, "EMP001", message.SendMessageRequest{Text: "hi"})
	require.NoError(t, err)
	_, err = f.svc.CreateFAQ(ctx, message.CreateFAQRequest{Question: "q", Answer: "a"})
	require.NoError(t, err)

	board, err := f.svc.GetBoard(ctx)
	require.NoError(t, err)
	assert.Len(t, board.Messages, 1)
	assert.Len(t, board.FAQs, 1)
	assert.NotNil(t, board.Announcements)
	assert.Empty(t, board.Announcements)
}
