package tutorials

// DefaultDocuments is the built-in tutorial set. Content additions land here
// until tutorials move to the database.
func DefaultDocuments() []Document {
	return []Document{
		{
			ID:       "es-create-expense",
			Title:    "Registrar un gasto",
			Body:     "registrar crear agregar un gasto nuevo con monto y proveedor",
			Language: "es",
			Steps: []string{
				"Di por ejemplo: gasté 50 en restaurante.",
				"Revisa el monto y la categoría detectada.",
				"Confirma para guardar el gasto.",
			},
		},
		{
			ID:       "es-add-client",
			Title:    "Agregar un cliente",
			Body:     "agregar crear un cliente nuevo con nombre y correo",
			Language: "es",
			Steps: []string{
				"Di: nuevo cliente, o ve a la sección de clientes.",
				"Completa el nombre del cliente.",
				"Guarda los cambios.",
			},
		},
		{
			ID:       "es-upload-receipt",
			Title:    "Subir un recibo",
			Body:     "subir adjuntar un recibo boleta factura foto",
			Language: "es",
			Steps: []string{
				"Abre la sección de recibos.",
				"Toca el botón de subir y elige la foto.",
				"Asocia el recibo a un gasto si corresponde.",
			},
		},
		{
			ID:       "en-create-expense",
			Title:    "Record an expense",
			Body:     "record create add a new expense with amount and vendor",
			Language: "en",
			Steps: []string{
				"Say for example: I spent 50 at a restaurant.",
				"Review the detected amount and category.",
				"Confirm to save the expense.",
			},
		},
		{
			ID:       "en-add-client",
			Title:    "Add a client",
			Body:     "add create a new client with name and email",
			Language: "en",
			Steps: []string{
				"Say: new client, or go to the clients section.",
				"Fill in the client name.",
				"Save your changes.",
			},
		},
		{
			ID:       "en-upload-receipt",
			Title:    "Upload a receipt",
			Body:     "upload attach a receipt invoice photo",
			Language: "en",
			Steps: []string{
				"Open the receipts section.",
				"Tap the upload button and pick the photo.",
				"Link the receipt to an expense if needed.",
			},
		},
	}
}
