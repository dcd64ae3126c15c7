package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cwrk-planet/board-service/internal/domain"
	"github.com/cwrk-planet/board-service/internal/transport/http/mocks"
	"github.com/cwrk-planet/board-service/pkg/errs"
	"github.com/cwrk-planet/board-service/pkg/httputil"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

type fixture struct {
	accounts *mocks.MockAccountService
	messages *mocks.MockMessageService
	router   http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		accounts: mocks.NewMockAccountService(ctrl),
		messages: mocks.NewMockMessageService(ctrl),
	}
	f.router = NewRouter(Deps{Accounts: f.accounts, Messages: f.messages, DB: stubPinger{}})

	return f
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()

	var out httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) domain.Message {
	t.Helper()

	var out domain.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func TestRegister(t *testing.T) {
	t.Run("should return the created account", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Register(gomock.Any(), "alice", "password1").
			Return(&domain.Account{ID: 7, Username: "alice", Password: "password1"}, nil)

		rec := f.do(http.MethodPost, "/register", `{"username":"alice","password":"password1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var acc domain.Account
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &acc))
		require.Equal(t, domain.AccountID(7), acc.ID)
		require.Equal(t, "alice", acc.Username)
	})

	t.Run("should reject malformed json", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/register", `{"username":`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "invalid json", decodeErr(t, rec).Error)
	})

	t.Run("should reject empty fields before password length", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/register", `{"username":"","password":"short"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Zero(t, decodeErr(t, rec).ErrorCode)
	})

	t.Run("should pass a whitespace password of eight chars to the uniqueness check", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Register(gomock.Any(), "alice", "        ").
			Return(nil, errs.ErrUsernameTaken)

		rec := f.do(http.MethodPost, "/register", `{"username":"alice","password":"        "}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, errs.ErrUsernameTaken.Error(), decodeErr(t, rec).Error)
	})

	t.Run("should flag a seven character password with errorCode 1", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/register", `{"username":"alice","password":"1234567"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, errs.CodePasswordTooShort, decodeErr(t, rec).ErrorCode)
	})

	t.Run("should reject a taken username", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Register(gomock.Any(), "alice", "password1").Return(nil, errs.ErrUsernameTaken)

		rec := f.do(http.MethodPost, "/register", `{"username":"alice","password":"password1"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, errs.ErrUsernameTaken.Error(), decodeErr(t, rec).Error)
	})

	t.Run("should hide storage failures behind 500", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.Join(errs.ErrStorage, errors.New("conn reset")))

		rec := f.do(http.MethodPost, "/register", `{"username":"alice","password":"password1"}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, msgInternal, decodeErr(t, rec).Error)
	})
}

func TestLogin(t *testing.T) {
	t.Run("should return the account on matching credentials", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Authenticate(gomock.Any(), "alice", "password1").
			Return(&domain.Account{ID: 3, Username: "alice", Password: "password1"})

		rec := f.do(http.MethodPost, "/login", `{"username":"alice","password":"password1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"id":3`)
	})

	t.Run("should answer 401 on mismatch", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Authenticate(gomock.Any(), "alice", "wrong-pass").Return(nil)

		rec := f.do(http.MethodPost, "/login", `{"username":"alice","password":"wrong-pass"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should answer 400 on missing fields", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/login", `{"username":"alice"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should answer 400 on malformed json", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/login", `nope`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPostMessage(t *testing.T) {
	author := &domain.Account{ID: 1, Username: "alice"}

	t.Run("should reject an unknown author", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Get(gomock.Any(), domain.AccountID(99)).Return(nil)

		rec := f.do(http.MethodPost, "/messages", `{"posted_by":99,"message_text":"hi","time_posted_epoch":1}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject 256 characters", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Get(gomock.Any(), domain.AccountID(1)).Return(author)

		body := `{"posted_by":1,"message_text":"` + strings.Repeat("a", 256) + `"}`
		rec := f.do(http.MethodPost, "/messages", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject empty text", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Get(gomock.Any(), domain.AccountID(1)).Return(author)

		rec := f.do(http.MethodPost, "/messages", `{"posted_by":1,"message_text":""}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should accept whitespace-only text", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Get(gomock.Any(), domain.AccountID(1)).Return(author)
		f.messages.EXPECT().Post(gomock.Any(), domain.Message{PostedBy: 1, MessageText: "   "}).
			Return(&domain.Message{ID: 6, PostedBy: 1, MessageText: "   "})

		rec := f.do(http.MethodPost, "/messages", `{"posted_by":1,"message_text":"   "}`)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "   ", decodeMessage(t, rec).MessageText)
	})

	t.Run("should accept exactly 255 characters", func(t *testing.T) {
		f := newFixture(t)
		text := strings.Repeat("a", 255)
		f.accounts.EXPECT().Get(gomock.Any(), domain.AccountID(1)).Return(author)
		f.messages.EXPECT().Post(gomock.Any(), domain.Message{PostedBy: 1, MessageText: text, TimePostedEpoch: 42}).
			Return(&domain.Message{ID: 5, PostedBy: 1, MessageText: text, TimePostedEpoch: 42})

		rec := f.do(http.MethodPost, "/messages", `{"posted_by":1,"message_text":"`+text+`","time_posted_epoch":42}`)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, domain.MessageID(5), decodeMessage(t, rec).ID)
	})

	t.Run("should answer 500 when the insert fails", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().Get(gomock.Any(), domain.AccountID(1)).Return(author)
		f.messages.EXPECT().Post(gomock.Any(), gomock.Any()).Return(nil)

		rec := f.do(http.MethodPost, "/messages", `{"posted_by":1,"message_text":"hi"}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestListMessages_EmptyIsArray(t *testing.T) {
	f := newFixture(t)
	f.messages.EXPECT().ListAll(gomock.Any()).Return([]domain.Message{})

	rec := f.do(http.MethodGet, "/messages", "")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetMessage(t *testing.T) {
	t.Run("should answer 200 with empty body when missing", func(t *testing.T) {
		f := newFixture(t)
		f.messages.EXPECT().Get(gomock.Any(), domain.MessageID(404)).Return(nil, errs.ErrMessageNotFound)

		rec := f.do(http.MethodGet, "/messages/404", "")

		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Body.String())
	})

	t.Run("should return the message", func(t *testing.T) {
		f := newFixture(t)
		f.messages.EXPECT().Get(gomock.Any(), domain.MessageID(1)).
			Return(&domain.Message{ID: 1, PostedBy: 2, MessageText: "hello", TimePostedEpoch: 10}, nil)

		rec := f.do(http.MethodGet, "/messages/1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"id":1,"posted_by":2,"message_text":"hello","time_posted_epoch":10}`, rec.Body.String())
	})

	for _, id := range []string{"abc", "0", "-3"} {
		t.Run("should reject id "+id, func(t *testing.T) {
			f := newFixture(t)

			rec := f.do(http.MethodGet, "/messages/"+id, "")

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "invalid id", decodeErr(t, rec).Error)
		})
	}
}

func TestListByAuthor(t *testing.T) {
	t.Run("should answer 404 when the author has no messages", func(t *testing.T) {
		f := newFixture(t)
		f.messages.EXPECT().ListByAuthor(gomock.Any(), domain.AccountID(1)).Return([]domain.Message{})

		rec := f.do(http.MethodGet, "/accounts/1/messages", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.NotEmpty(t, decodeErr(t, rec).Error)
	})

	t.Run("should return the author's messages", func(t *testing.T) {
		f := newFixture(t)
		f.messages.EXPECT().ListByAuthor(gomock.Any(), domain.AccountID(1)).
			Return([]domain.Message{{ID: 1, PostedBy: 1, MessageText: "a"}, {ID: 2, PostedBy: 1, MessageText: "b"}})

		rec := f.do(http.MethodGet, "/accounts/1/messages", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var out []domain.Message
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
		require.Len(t, out, 2)
	})
}

func TestUpdateMessage(t *testing.T) {
	orig := &domain.Message{ID: 1, PostedBy: 2, MessageText: "old", TimePostedEpoch: 10}

	t.Run("should apply the update and reflect it on the next read", func(t *testing.T) {
		f := newFixture(t)
		updated := &domain.Message{ID: 1, PostedBy: 2, MessageText: "new", TimePostedEpoch: 10}
		gomock.InOrder(
			f.messages.EXPECT().Get(gomock.Any(), domain.MessageID(1)).Return(orig, nil),
			f.messages.EXPECT().Update(gomock.Any(), domain.Message{ID: 1, MessageText: "new"}).Return(true, nil),
			f.messages.EXPECT().Get(gomock.Any(), domain.MessageID(1)).Return(updated, nil),
			f.messages.EXPECT().Get(gomock.Any(), domain.MessageID(1)).Return(updated, nil),
		)

		rec := f.do(http.MethodPatch, "/messages/1", `{"message_text":"new"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "new", decodeMessage(t, rec).MessageText)

		rec = f.do(http.MethodGet, "/messages/1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "new", decodeMessage(t, rec).MessageText)
	})

	t.Run("should reject a missing target", func(t *testing.T) {
		f := newFixture(t)
		f.messages.EXPECT().Get(gomock.Any(), domain.MessageID(9)).Return(nil, errs.ErrMessageNotFound)

		rec := f.do(http.MethodPatch, "/messages/9", `{"message_text":"new"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should accept whitespace-only text", func(t *testing.T) {
		f := newFixture(t)
		spaced := &domain.Message{ID: 1, PostedBy: 2, MessageText: "   ", TimePostedEpoch: 10}
		gomock.InOrder(
			f.messages.EXPECT().Get(gomock.Any(), domain.MessageID(1)).Return(orig, nil),
			f.messages.EXPECT().Update(gomock.Any(), domain.Message{ID: 1, MessageText: "   "}).Return(true, nil),
			f.messages.EXPECT().Get(gomock.Any(), domain.MessageID(1)).Return(spaced, nil),
		)

		rec := f.do(http.MethodPatch, "/messages/1", `{"message_text":"   "}`)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "   ", decodeMessage(t, rec).MessageText)
	})

	t.Run("should reject empty and oversized text", func(t *testing.T) {
		for _, body := range []string{`{}`, `{"message_text":""}`, `{"message_text":"` + strings.Repeat("x", 256) + `"}`} {
			f := newFixture(t)
			f.messages.EXPECT().Get(gomock.Any(), domain.MessageID(1)).Return(orig, nil)

			rec := f.do(http.MethodPatch, "/messages/1", body)

			require.Equal(t, http.StatusBadRequest, rec.Code, body)
		}
	})

	t.Run("should answer 500 when the write fails", func(t *testing.T) {
		f := newFixture(t)
		f.messages.EXPECT().Get(gomock.Any(), domain.MessageID(1)).Return(orig, nil)
		f.messages.EXPECT().Update(gomock.Any(), gomock.Any()).Return(false, nil)

		rec := f.do(http.MethodPatch, "/messages/1", `{"message_text":"new","time_posted_epoch":20}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, msgInternal, decodeErr(t, rec).Error)
	})
}

func TestDeleteMessage(t *testing.T) {
	t.Run("should return the prior content, then empty body on repeat", func(t *testing.T) {
		f := newFixture(t)
		msg := &domain.Message{ID: 1, PostedBy: 2, MessageText: "bye", TimePostedEpoch: 10}
		gomock.InOrder(
			f.messages.EXPECT().Get(gomock.Any(), domain.MessageID(1)).Return(msg, nil),
			f.messages.EXPECT().Delete(gomock.Any(), domain.MessageID(1)).Return(msg),
			f.messages.EXPECT().Get(gomock.Any(), domain.MessageID(1)).Return(nil, errs.ErrMessageNotFound),
		)

		rec := f.do(http.MethodDelete, "/messages/1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "bye", decodeMessage(t, rec).MessageText)

		rec = f.do(http.MethodDelete, "/messages/1", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Body.String())
	})

	t.Run("should answer 500 when the delete fails", func(t *testing.T) {
		f := newFixture(t)
		f.messages.EXPECT().Get(gomock.Any(), domain.MessageID(1)).Return(&domain.Message{ID: 1}, nil)
		f.messages.EXPECT().Delete(gomock.Any(), domain.MessageID(1)).Return(nil)

		rec := f.do(http.MethodDelete, "/messages/1", "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHealthz(t *testing.T) {
	ctrl := gomock.NewController(t)
	deps := Deps{Accounts: mocks.NewMockAccountService(ctrl), Messages: mocks.NewMockMessageService(ctrl)}

	deps.DB = stubPinger{}
	rec := httptest.NewRecorder()
	NewRouter(deps).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	deps.DB = stubPinger{err: errors.New("down")}
	rec = httptest.NewRecorder()
	NewRouter(deps).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
