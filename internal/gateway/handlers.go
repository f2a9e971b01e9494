package gateway

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/paygate/internal/admission"
)

// defaultSubject は username 未指定時に発行するトークンのサブジェクト。
const defaultSubject = "test-user"

// malformedBodyMessage はJSONとして解析できないリクエストボディへの応答メッセージ。
const malformedBodyMessage = "Malformed request body"

// handleIssueToken はトークンを発行するハンドラを返す。
// サブジェクトは検証しない。
func (s *Server) handleIssueToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := s.issuer.Issue(c.DefaultQuery("username", defaultSubject))
		if err != nil {
			log.Printf("トークン発行エラー: %v", err)
			c.JSON(http.StatusInternalServerError, admission.InternalError(s.now()))
			return
		}

		s.metrics.tokensIssued.Inc()
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// handleValidatePayment は決済リクエストを検証するハンドラを返す。
func (s *Server) handleValidatePayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req admission.PaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.rejectMalformed(c, admission.OperationPayment, err)
			return
		}

		outcome, err := s.admission.ValidatePayment(c.Request.Context(), req)
		s.respond(c, admission.OperationPayment, outcome, err)
	}
}

// handleRequestRefund は返金依頼を検証するハンドラを返す。
func (s *Server) handleRequestRefund() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req admission.RefundRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			s.rejectMalformed(c, admission.OperationRefund, err)
			return
		}

		outcome, err := s.admission.RequestRefund(c.Request.Context(), req)
		s.respond(c, admission.OperationRefund, outcome, err)
	}
}

// handleTransactionStatus は取引状態を照会するハンドラを返す。
func (s *Server) handleTransactionStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		outcome, err := s.admission.TransactionStatus(c.Request.Context(), c.Param("transactionId"))
		s.respond(c, admission.OperationTransactionStatus, outcome, err)
	}
}

// respond はパイプラインの結果を共通レスポンス形式で返す。
// 内部障害の詳細はログにのみ出力し、呼び出し元には固定メッセージを返す。
func (s *Server) respond(c *gin.Context, operation string, outcome admission.Outcome, err error) {
	if err != nil {
		log.Printf("受付判定の内部障害: operation=%s, error=%v", operation, err)
		s.metrics.internalErrors.WithLabelValues(operation).Inc()
		c.JSON(http.StatusInternalServerError, admission.InternalError(s.now()))
		return
	}

	s.metrics.observe(operation, outcome.Code)
	c.JSON(outcome.Code.HTTPStatus(), admission.Format(outcome, s.now()))
}

// rejectMalformed は解析できないリクエストボディを400で拒否する。
func (s *Server) rejectMalformed(c *gin.Context, operation string, err error) {
	log.Printf("リクエストボディの解析に失敗: operation=%s, error=%v", operation, err)
	s.respond(c, operation, admission.Outcome{
		Code:    admission.CodeBadRequest,
		Message: malformedBodyMessage,
	}, nil)
}
