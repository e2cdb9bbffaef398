package report

// Candidate-key tables per report type. Spellings are the ones the stored
// procedures have been observed returning; casing and language drift per
// column, so every canonical field declares its known aliases explicitly.

var firmasFechaSchema = Schema{
	Type:  FirmasFecha,
	Sheet: "Registros",
	Fields: []Field{
		{Name: "cedula", Candidates: []string{"Cedula", "CÉDULA"}},
		{Name: "razon_social", Candidates: []string{"razonSocial", "razon social", "RazonSocial"}},
		{Name: "tipo_persona", Candidates: []string{"tipoPersona"}},
		{Name: "fecha_registro", Candidates: []string{"fechaRegistro"}},
		{Name: "celular", Candidates: []string{"telefono", "movil"}},
		{Name: "duracion_firma", Candidates: []string{"duracionFirma", "duracion"}},
		{Name: "codidgo_distribuidor", Candidates: []string{"codigo_distribuidor", "codigodistribuidor"}},
		{Name: "distribuidor", Candidates: []string{"Distribuidor"}},
		{Name: "periodo_registro", Candidates: []string{"periodoRegistro"}},
		{Name: "estado", Candidates: []string{"Estado", "ESTADO"}},
	},
}

var firmasCaducarSchema = Schema{
	Type:  FirmasCaducar,
	Sheet: "FirmasPorVencer",
	Fields: []Field{
		{Name: "cedula", Candidates: []string{"Cedula", "CÉDULA"}},
		{Name: "razon_social", Candidates: []string{"razonSocial", "razon social", "RazonSocial"}},
		{Name: "tipo_persona", Candidates: []string{"tipoPersona"}},
		{Name: "celular", Candidates: []string{"telefono", "movil"}},
		{Name: "duracion_firma", Candidates: []string{"duracionFirma", "duracion"}},
		{Name: "Inicio", Candidates: []string{"inicio", "fecha_inicio", "fechaInicio"}},
		{Name: "CADUCIDAD", Candidates: []string{"caducidad", "fecha_caducidad", "fechaCaducidad"}},
		{Name: "Estado", Candidates: []string{"estado", "ESTADO"}},
		{Name: "distribuidor", Candidates: []string{"Distribuidor"}},
		{Name: "periodo_registro", Candidates: []string{"periodoRegistro"}},
	},
}

var facturasFechaSchema = Schema{
	Type:  FacturasFecha,
	Sheet: "Facturas",
	Fields: []Field{
		{Name: "id", Candidates: []string{"ID", "Id"}},
		{Name: "ruc", Candidates: []string{"RUC"}},
		{Name: "codUnico", Candidates: []string{"cod_unico", "codigo_unico"}},
		{Name: "cedula", Candidates: []string{"Cedula"}},
		{Name: "localizador", Candidates: nil},
		{Name: "codDis", Candidates: []string{"cod_dis", "codidgo_distribuidor", "codigo_distribuidor"}},
		{Name: "tipo", Candidates: []string{"Tipo"}},
		{Name: "dia", Candidates: nil},
		{Name: "mes", Candidates: nil},
		{Name: "duracion", Candidates: []string{"duracion_firma"}},
		{Name: "razon_social", Candidates: []string{"razonSocial", "RazonSocial"}},
		{Name: "direccion", Candidates: []string{"Direccion"}},
		{Name: "correo", Candidates: []string{"email", "Correo"}},
		{Name: "telefono", Candidates: []string{"Telefono", "celular"}},
		{Name: "valorC", Candidates: []string{"valor"}},
		{Name: "Banco", Candidates: []string{"banco"}},
		{Name: "codUserT", Candidates: []string{"cod_user_t"}},
		{Name: "horaIngreso", Candidates: []string{"hora_ingreso"}},
		{Name: "horaTramitacion", Candidates: []string{"hora_tramitacion"}},
		{Name: "Estado", Candidates: []string{"estado", "ESTADO"}},
		{Name: "periodo", Candidates: []string{"periodo_registro"}},
		{Name: "clave", Candidates: nil},
		{Name: "tipoP", Candidates: []string{"tipo_p"}},
	},
}

var firmasGeneradasFacturaSchema = Schema{
	Type:  FirmasGeneradasFactura,
	Sheet: "Firmas con Factura",
	Fields: []Field{
		{Name: "id", Candidates: []string{"ID", "Id"}},
		{Name: "ruc", Candidates: []string{"RUC"}},
		{Name: "codUnico", Candidates: []string{"cod_unico", "codigo_unico"}},
		{Name: "cedula", Candidates: []string{"Cedula"}},
		{Name: "localizador", Candidates: nil},
		{Name: "codDis", Candidates: []string{"cod_dis", "codidgo_distribuidor"}},
		{Name: "nombre_distribuidor", Candidates: []string{"distribuidor", "nombreDistribuidor"}},
		{Name: "correo_distribuidor", Candidates: []string{"correoDistribuidor", "email_distribuidor"}},
		{Name: "telefono_distribuidor", Candidates: []string{"telefonoDistribuidor", "telefono", "celular"}},
		{Name: "tipo", Candidates: nil},
		{Name: "dia", Candidates: nil},
		{Name: "mes", Candidates: nil},
		{Name: "duracion", Candidates: []string{"duracion_firma"}},
		{Name: "razon_social", Candidates: []string{"razonSocial"}},
		{Name: "direccion", Candidates: nil},
		{Name: "correo", Candidates: []string{"email"}},
		{Name: "telefono", Candidates: []string{"celular"}},
		{Name: "valorC", Candidates: []string{"valor"}},
		{Name: "Banco", Candidates: []string{"banco"}},
		{Name: "codUserT", Candidates: []string{"cod_user_t"}},
		{Name: "horaIngreso", Candidates: []string{"hora_ingreso"}},
		{Name: "horaTramitacion", Candidates: []string{"hora_tramitacion"}},
		{Name: "horaFinalizacion", Candidates: []string{"hora_finalizacion"}},
		{Name: "tiempoFirma", Candidates: []string{"tiempo_firma"}},
		{Name: "Emisor", Candidates: []string{"emisor"}},
		{Name: "Estado", Candidates: []string{"estado"}},
		{Name: "codUserF", Candidates: []string{"cod_user_f"}},
		{Name: "Comentario", Candidates: []string{"comentario"}},
		{Name: "periodo", Candidates: []string{"periodo_registro"}},
		{Name: "clave", Candidates: nil},
		{Name: "correo3", Candidates: nil},
		{Name: "creacionClave", Candidates: []string{"creacion_clave"}},
		{Name: "notificado", Candidates: nil},
		{Name: "tipoP", Candidates: []string{"tipo_p"}},
		{Name: "comprobante", Candidates: nil},
		{Name: "recurrencia", Candidates: nil},
		{Name: "codigo_factura", Candidates: []string{"codigoFactura"}},
		{Name: "numero_factura", Candidates: []string{"numeroFactura"}},
		{Name: "identificacion_factura", Candidates: []string{"identificacionFactura"}},
		{Name: "empresa_distribuidor", Candidates: []string{"empresaDistribuidor"}},
	},
}

var filtroDistribuidoresSchema = Schema{
	Type:  FiltroDistribuidores,
	Sheet: "Distribuidores",
	Fields: []Field{
		{Name: "fecha_registro", Candidates: []string{"fechaRegistro"}},
		{Name: "codigo_distribuidor", Candidates: []string{"codigoDistribuidor", "cod_distribuidor"}},
		{Name: "ruc_distribuidor", Candidates: []string{"rucDistribuidor"}},
		{Name: "nombre_distribuidor", Candidates: []string{"nombreDistribuidor"}},
		{Name: "direccion_distribuidor", Candidates: []string{"direccionDistribuidor"}},
		// upstream column is misspelled; keep it and alias the sane spellings
		{Name: "telefoo_distribuidor", Candidates: []string{"telefonoDistribuidor", "telefono_distribuidor"}},
		{Name: "cant_vendida", Candidates: []string{"cantVendida", "cantidad_vendida"}, Numeric: true},
		{Name: "ruc_enganchador", Candidates: []string{"rucEnganchador"}},
		{Name: "nombre_enganchador", Candidates: []string{"nombreEnganchador"}},
	},
}

var firmasPorEnganchadorSchema = Schema{
	Type:  FirmasPorEnganchador,
	Sheet: "FirmasPorEnganchador",
	Fields: []Field{
		{Name: "ID", Candidates: []string{"id"}},
		{Name: "RUC", Candidates: []string{"ruc"}},
		{Name: "CEDULA", Candidates: []string{"cedula"}},
		{Name: "RAZON_SOCIAL", Candidates: []string{"razon_social", "razonSocial"}},
		{Name: "TIPO", Candidates: []string{"tipo"}},
		{Name: "CODIGO_UNICO", Candidates: []string{"codigo_unico", "codUnico"}},
		{Name: "DIA", Candidates: []string{"dia"}},
		{Name: "MES", Candidates: []string{"mes"}},
		{Name: "PERIODO", Candidates: []string{"periodo", "periodo_registro"}},
		{Name: "DURACION", Candidates: []string{"duracion", "duracion_firma"}},
		{Name: "DIRECCION", Candidates: []string{"direccion"}},
		{Name: "CORREO", Candidates: []string{"correo", "email"}},
		{Name: "TELEFONO", Candidates: []string{"telefono", "celular"}},
		{Name: "VALOR_COBRADO", Candidates: []string{"valorC", "valor"}},
		{Name: "BANCO", Candidates: []string{"banco"}},
		{Name: "HORA_INGRESO", Candidates: []string{"horaIngreso", "hora_ingreso"}},
		{Name: "HORA_TRAMITACION", Candidates: []string{"horaTramitacion", "hora_tramitacion"}},
		{Name: "HORA_FINALIZACION", Candidates: []string{"horaFinalizacion", "hora_finalizacion"}},
		{Name: "TIEMPO_FIRMA", Candidates: []string{"tiempoFirma", "tiempo_firma"}},
		{Name: "EMISOR", Candidates: []string{"emisor"}},
		{Name: "ESTADO", Candidates: []string{"estado"}},
		{Name: "COMENTARIO", Candidates: []string{"comentario"}},
		{Name: "PLATAFORMA_FIRMAS", Candidates: []string{"plataforma_firmas"}},
		{Name: "NOMBRE_DISTRIBUIDOR", Candidates: []string{"nombre_distribuidor"}},
		{Name: "CODIGO_DISTRIBUIDOR", Candidates: []string{"codigo_distribuidor", "codDis"}},
		{Name: "NOMBRE_ENGANCHADOR", Candidates: []string{"nombre_enganchador"}},
		{Name: "CODIGO_ENGANCHADOR", Candidates: []string{"codigo_enganchador"}},
	},
}

var firmasVendidasSchema = Schema{
	Type:  FirmasVendidas,
	Sheet: "FirmasVendidas",
	Fields: []Field{
		{Name: "USUAPELLIDO", Candidates: []string{"usuapellido", "apellido", "USUARIO"}},
		{Name: "codUserT", Candidates: []string{"coduserT", "codUser", "coduser"}},
		{Name: "mes", Candidates: nil},
		{Name: "periodo", Candidates: []string{"periodo_registro"}},
		{Name: "1_año", Candidates: []string{"1_años", "1_ano", "1año"}, Numeric: true},
		{Name: "2_años", Candidates: []string{"2_anos"}, Numeric: true},
		{Name: "3_años", Candidates: []string{"3_anos"}, Numeric: true},
		{Name: "4_años", Candidates: []string{"4_anos"}, Numeric: true},
		{Name: "5_años", Candidates: []string{"5_anos"}, Numeric: true},
		{Name: "1_mes", Candidates: nil, Numeric: true},
		{Name: "6_meses", Candidates: nil, Numeric: true},
		{Name: "7_días", Candidates: []string{"7_dias"}, Numeric: true},
		{Name: "15_días", Candidates: []string{"15_dias"}, Numeric: true},
		{Name: "sin_duración", Candidates: []string{"sin_duracion"}, Numeric: true},
		{Name: "total_firmas", Candidates: []string{"total"}, Numeric: true},
	},
}

var pagosFacturadoresSchema = Schema{
	Type:  PagosFacturadores,
	Sheet: "PagosFacturadores",
	Fields: []Field{
		{Name: "fecha_pago", Candidates: []string{"fechaPago", "fecha"}},
		{Name: "ruc_facturador", Candidates: []string{"rucFacturador", "ruc"}},
		{Name: "nombre_facturador", Candidates: []string{"nombreFacturador", "razon_social"}},
		{Name: "numero_factura", Candidates: []string{"numeroFactura"}},
		{Name: "valor_pago", Candidates: []string{"valorPago", "valor"}, Numeric: true},
		{Name: "forma_pago", Candidates: []string{"formaPago", "tipoP"}},
		{Name: "banco", Candidates: []string{"Banco"}},
		{Name: "estado", Candidates: []string{"Estado", "ESTADO"}},
	},
}

var auditoriaEmisoresSchema = Schema{
	Type:  AuditoriaEmisores,
	Sheet: "AuditoriaEmisores",
	Fields: []Field{
		{Name: "fecha_registro", Candidates: []string{"fechaRegistro"}},
		{Name: "ruc_emisor", Candidates: []string{"rucEmisor", "ruc"}},
		{Name: "razon_social", Candidates: []string{"razonSocial"}},
		{Name: "correo", Candidates: []string{"email"}},
		{Name: "telefono", Candidates: []string{"celular"}},
		{Name: "plan", Candidates: []string{"nombre_plan", "nombrePlan"}},
		{Name: "fecha_activacion", Candidates: []string{"fechaActivacion"}},
		{Name: "fecha_caducidad", Candidates: []string{"fechaCaducidad", "caducidad", "CADUCIDAD"}},
		{Name: "comprobantes_emitidos", Candidates: []string{"comprobantesEmitidos", "comprobantes"}, Numeric: true},
		{Name: "estado", Candidates: []string{"Estado", "ESTADO"}},
	},
}

var plantillasCaducarSchema = Schema{
	Type:  PlantillasCaducar,
	Sheet: "PlantillasPorCaducar",
	Fields: []Field{
		{Name: "nombre_plantilla", Candidates: []string{"nombrePlantilla", "plantilla"}},
		{Name: "ruc", Candidates: []string{"RUC"}},
		{Name: "razon_social", Candidates: []string{"razonSocial", "RazonSocial"}},
		{Name: "fecha_creacion", Candidates: []string{"fechaCreacion"}},
		{Name: "fecha_caducidad", Candidates: []string{"fechaCaducidad", "caducidad", "CADUCIDAD"}},
		{Name: "dias_restantes", Candidates: []string{"diasRestantes"}, Numeric: true},
		{Name: "estado", Candidates: []string{"Estado", "ESTADO"}},
		{Name: "correo", Candidates: []string{"email"}},
	},
}

var schemas = map[Type]*Schema{
	FirmasFecha:            &firmasFechaSchema,
	FirmasCaducar:          &firmasCaducarSchema,
	FacturasFecha:          &facturasFechaSchema,
	FirmasGeneradasFactura: &firmasGeneradasFacturaSchema,
	FiltroDistribuidores:   &filtroDistribuidoresSchema,
	FirmasPorEnganchador:   &firmasPorEnganchadorSchema,
	FirmasVendidas:         &firmasVendidasSchema,
	PagosFacturadores:      &pagosFacturadoresSchema,
	AuditoriaEmisores:      &auditoriaEmisoresSchema,
	PlantillasCaducar:      &plantillasCaducarSchema,
}

// SchemaFor returns the candidate-key table for a report type.
func SchemaFor(t Type) (*Schema, bool) {
	s, ok := schemas[t]
	return s, ok
}

// Types lists every known report type.
func Types() []Type {
	out := make([]Type, 0, len(schemas))
	for t := range schemas {
		out = append(out, t)
	}
	return out
}
