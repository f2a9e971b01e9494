package gateway

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// envelopeSchema は全操作で共通のレスポンスボディのスキーマ。
var envelopeSchema = gin.H{
	"type": "object",
	"properties": gin.H{
		"id":        gin.H{"type": "string", "nullable": true, "description": "Identifier assigned to an accepted request."},
		"message":   gin.H{"type": "string", "description": "Validation result message."},
		"timestamp": gin.H{"type": "string", "format": "date-time", "description": "Server time when the response was generated."},
	},
}

// envelopeResponse は共通レスポンスボディを持つ応答定義を返す。
func envelopeResponse(description string) gin.H {
	return gin.H{
		"description": description,
		"content": gin.H{
			"application/json": gin.H{"schema": gin.H{"$ref": "#/components/schemas/Envelope"}},
		},
	}
}

// unauthorizedResponse はアクセスゲートが返す401の応答定義。
var unauthorizedResponse = gin.H{
	"description": "Unauthorized - missing or invalid token",
	"content": gin.H{
		"text/plain": gin.H{"schema": gin.H{"type": "string"}},
	},
}

// apiDocument はOpenAPI 3ドキュメントを返す。
func apiDocument() gin.H {
	bearer := []gin.H{{"bearerAuth": []string{}}}

	return gin.H{
		"openapi": "3.0.1",
		"info": gin.H{
			"title":   "paygate",
			"version": "1.0.0",
			"description": "Request validation for payments, refunds and transaction status. " +
				"Obtain a token from /auth/token and send it as 'Authorization: Bearer <token>'.",
		},
		"paths": gin.H{
			"/auth/token": gin.H{
				"get": gin.H{
					"tags":    []string{"Auth Token Generation"},
					"summary": "Issue a token for testing secured endpoints",
					"parameters": []gin.H{{
						"name": "username", "in": "query", "required": false,
						"schema": gin.H{"type": "string", "default": defaultSubject},
					}},
					"responses": gin.H{
						"200": gin.H{
							"description": "Token issued",
							"content": gin.H{"application/json": gin.H{"schema": gin.H{
								"type":       "object",
								"properties": gin.H{"token": gin.H{"type": "string"}},
							}}},
						},
					},
				},
			},
			"/api/payments/validate": gin.H{
				"post": gin.H{
					"tags":     []string{"Payment Services"},
					"summary":  "Validate a payment request",
					"security": bearer,
					"requestBody": gin.H{
						"required": true,
						"content":  gin.H{"application/json": gin.H{"schema": gin.H{"$ref": "#/components/schemas/PaymentRequest"}}},
					},
					"responses": gin.H{
						"200": envelopeResponse("Payment request is valid"),
						"400": envelopeResponse("Bad Request - invalid payment data"),
						"401": unauthorizedResponse,
						"422": envelopeResponse("Unprocessable Entity - business rule validation failed"),
						"500": envelopeResponse("Internal Server Error"),
					},
				},
			},
			"/api/refunds/request": gin.H{
				"post": gin.H{
					"tags":     []string{"Refund"},
					"summary":  "Request a refund for a payment",
					"security": bearer,
					"requestBody": gin.H{
						"required": true,
						"content":  gin.H{"application/json": gin.H{"schema": gin.H{"$ref": "#/components/schemas/RefundRequest"}}},
					},
					"responses": gin.H{
						"200": envelopeResponse("Refund request accepted"),
						"400": envelopeResponse("Bad Request - invalid refund data"),
						"401": unauthorizedResponse,
						"422": envelopeResponse("Unprocessable Entity - refund cannot be processed"),
						"500": envelopeResponse("Internal Server Error"),
					},
				},
			},
			"/api/transactions/status/{transactionId}": gin.H{
				"get": gin.H{
					"tags":     []string{"Transaction Status"},
					"summary":  "Get transaction status",
					"security": bearer,
					"parameters": []gin.H{{
						"name": "transactionId", "in": "path", "required": true,
						"schema": gin.H{"type": "string", "pattern": `^TXN\d{6}$`, "example": "TXN123456"},
					}},
					"responses": gin.H{
						"200": envelopeResponse("Transaction found"),
						"400": envelopeResponse("Bad Request - invalid transaction ID"),
						"401": unauthorizedResponse,
						"404": envelopeResponse("Transaction not found"),
						"500": envelopeResponse("Internal Server Error"),
					},
				},
			},
		},
		"components": gin.H{
			"securitySchemes": gin.H{
				"bearerAuth": gin.H{"type": "http", "scheme": "bearer", "bearerFormat": "JWT"},
			},
			"schemas": gin.H{
				"Envelope": envelopeSchema,
				"PaymentRequest": gin.H{
					"type": "object",
					"properties": gin.H{
						"amount":        gin.H{"type": "number", "format": "double", "description": "Payment amount. Must not be negative and cannot exceed 10,000 (daily limit)."},
						"currency":      gin.H{"type": "string", "description": "Currency of payment. Supported values: USD, EUR."},
						"paymentMethod": gin.H{"type": "string", "description": "Payment method. Allowed values: CARD, UPI, BANK_TRANSFER."},
					},
				},
				"RefundRequest": gin.H{
					"type": "object",
					"properties": gin.H{
						"transactionId": gin.H{"type": "string"},
						"amount":        gin.H{"type": "number", "format": "double", "description": "Refund amount. Must be positive and cannot exceed 5,000."},
					},
				},
			},
		},
	}
}

// handleAPIDocs はOpenAPIドキュメントを返すハンドラを返す。
func (s *Server) handleAPIDocs() gin.HandlerFunc {
	doc := apiDocument()
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, doc)
	}
}
