package link

// openAPIDocument is the machine-readable description of the inbound surface,
// served verbatim with the advertised base URL substituted in.
func openAPIDocument(serverURL string) map[string]any {
	return map[string]any{
		"openapi": "3.0.0",
		"info": map[string]any{
			"title":       "Cielo Payment Link API",
			"version":     "1.0.0",
			"description": "API para gerar e verificar links de pagamento Cielo",
		},
		"servers": []map[string]any{
			{"url": serverURL},
		},
		"paths": map[string]any{
			"/api/cielo": map[string]any{
				"post": map[string]any{
					"summary":     "Gerar ou verificar link de pagamento Cielo",
					"description": "Cria um novo link de pagamento ou verifica o status de um pagamento existente",
					"requestBody": map[string]any{
						"required": true,
						"content": map[string]any{
							"application/json": map[string]any{
								"schema": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"productName": map[string]any{
											"type":        "string",
											"description": "Nome do produto/serviço ou ID do pagamento para verificação (UUID)",
										},
										"description": map[string]any{
											"type":        "string",
											"description": "Descrição detalhada do produto (opcional)",
										},
										"priceInCents": map[string]any{
											"type":        "string",
											"description": "Valor em centavos. Ex: R$ 150,00 = '15000'",
										},
									},
									"required": []string{"productName"},
								},
							},
						},
					},
					"responses": map[string]any{
						"200": map[string]any{
							"description": "Link criado ou pagamento verificado com sucesso",
							"content": map[string]any{
								"application/json": map[string]any{
									"schema": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"status": map[string]any{
												"type": "string",
												"enum": []string{"success", "error"},
											},
											"type": map[string]any{
												"type": "string",
												"enum": []string{"created", "verified"},
											},
											"shortUrl": map[string]any{
												"type":        "string",
												"description": "URL do link de pagamento",
											},
											"id": map[string]any{
												"type":        "string",
												"description": "ID do pagamento Cielo",
											},
											"paymentStatus": map[string]any{
												"type": "string",
												"enum": []string{"APPROVED", "PENDING"},
											},
											"message": map[string]any{
												"type": "string",
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}
