package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSendOrderNotificationEndpoint(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/api/notifications/order", gin.H{
		"techChatId": 777,
		"order":      gin.H{"id": "ORD-4501", "customer": "Dewi"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	body := decode[map[string]any](t, w)
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	if e.sender.count(777) != 1 {
		t.Errorf("offers = %d, want 1", e.sender.count(777))
	}

	w = e.do(t, http.MethodPost, "/api/notifications/order", gin.H{"order": gin.H{"id": "X"}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing chat id status = %d, want 400", w.Code)
	}
}

func TestSendOrderNotificationReportsFailure(t *testing.T) {
	e := newEnv(t)
	e.sender.failFor[777] = true

	w := e.do(t, http.MethodPost, "/api/notifications/order", gin.H{
		"techChatId": 777,
		"order":      gin.H{"id": "ORD-4501"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even on delivery failure", w.Code)
	}
	body := decode[map[string]any](t, w)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
}

func TestBulkNotificationEndpoint(t *testing.T) {
	e := newEnv(t)
	e.sender.failFor[222] = true

	w := e.do(t, http.MethodPost, "/api/notifications/bulk", gin.H{
		"chatIds": []int64{111, 222, 333},
		"message": "Briefing jam 8",
	})
	body := decode[map[string]any](t, w)
	if body["sent"].(float64) != 2 || body["failed"].(float64) != 1 {
		t.Errorf("sent/failed = %v/%v, want 2/1", body["sent"], body["failed"])
	}

	w = e.do(t, http.MethodPost, "/api/notifications/bulk", gin.H{"message": "no targets"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing chatIds status = %d, want 400", w.Code)
	}
}

func TestPriorityWarningEndpoint(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/api/notifications/priority-warning", gin.H{
		"order": gin.H{"id": "ORD-4501", "priority": "HIGH", "customer": "Dewi"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	// Both admin and supervisor chats got the alert.
	if e.sender.count(900) != 1 || e.sender.count(901) != 1 {
		t.Errorf("admin/supervisor alerts = %d/%d, want 1/1",
			e.sender.count(900), e.sender.count(901))
	}

	w = e.do(t, http.MethodPost, "/api/notifications/priority-warning", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing order status = %d, want 400", w.Code)
	}
}

func TestStaleAlertEndpoint(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/api/notifications/stale-alert", gin.H{
		"orders": []gin.H{{"id": "ORD-1"}, {"id": "ORD-2"}},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	w = e.do(t, http.MethodPost, "/api/notifications/stale-alert", gin.H{"orders": []gin.H{}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty orders status = %d, want 400", w.Code)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/api/notifications/summary", gin.H{
		"summary": gin.H{"total": 10, "completed": 4},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if e.sender.count(900) != 1 {
		t.Errorf("admin digests = %d, want 1", e.sender.count(900))
	}
}

func TestAdminAndSupervisorMessages(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/api/notifications/admin", gin.H{"message": "cek dashboard"})
	if w.Code != http.StatusOK {
		t.Fatalf("admin status = %d", w.Code)
	}
	if e.sender.count(900) != 1 || e.sender.count(901) != 0 {
		t.Errorf("admin-only fan-out wrong: admin=%d supervisor=%d",
			e.sender.count(900), e.sender.count(901))
	}

	w = e.do(t, http.MethodPost, "/api/notifications/supervisor", gin.H{"message": "cek laporan"})
	if w.Code != http.StatusOK {
		t.Fatalf("supervisor status = %d", w.Code)
	}
	if e.sender.count(901) != 1 {
		t.Errorf("supervisor messages = %d, want 1", e.sender.count(901))
	}

	w = e.do(t, http.MethodPost, "/api/notifications/admin", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing message status = %d, want 400", w.Code)
	}
}
