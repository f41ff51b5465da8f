// Package i18n holds the dashboard message catalogues. Portuguese is the
// default language; English is the only alternative.
package i18n

import "strings"

const (
	Default = "pt"
	English = "en"
)

// Supported reports whether lang has a catalogue.
func Supported(lang string) bool { return lang == Default || lang == English }

// DetectLanguage picks the first supported language of an Accept-Language header.
func DetectLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		base, _, _ := strings.Cut(strings.ToLower(tag), "-")
		if Supported(base) {
			return base
		}
	}
	return Default
}

// T translates code, falling back to Portuguese and then to the code itself.
func T(lang, code string) string {
	if m, ok := catalog[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := catalog[Default][code]; ok {
		return s
	}
	return code
}

var catalog = map[string]map[string]string{
	Default: pt,
	English: en,
}

var pt = map[string]string{
	"app_name": "Depósito do Pitty",
	"tagline":  "Sistema de gestão do Depósito do Pit",

	// navigation
	"nav_dashboard":   "Dashboard",
	"nav_users":       "Usuários",
	"nav_customers":   "Clientes",
	"nav_suppliers":   "Fornecedores",
	"nav_products":    "Produtos",
	"nav_budgets":     "Orçamentos",
	"nav_payables":    "Contas a pagar",
	"nav_receivables": "Contas a receber",
	"logout":          "Sair",

	// generic actions
	"new":         "Novo",
	"edit":        "Editar",
	"delete":      "Excluir",
	"save":        "Salvar",
	"cancel":      "Cancelar",
	"search":      "Buscar",
	"actions":     "Ações",
	"confirm_del": "Tem certeza que deseja excluir este registro?",
	"no_records":  "Nenhum registro encontrado.",
	"active":      "Ativo",
	"inactive":    "Inativo",
	"yes":         "Sim",
	"no":          "Não",
	"status":      "Status",
	"created_at":  "Criado em",
	"add_item":    "Adicionar item",
	"remove_item": "Remover",
	"fix_errors":  "Corrija os campos destacados.",
	"optional":    "opcional",

	// pagination
	"per_page": "Itens por página",
	"first":    "Primeira",
	"prev":     "Anterior",
	"next":     "Próxima",
	"last":     "Última",
	"page_of":  "Página %d de %d",
	"showing":  "Mostrando %d a %d de %d",

	// fields
	"name":                "Nome",
	"email":               "E-mail",
	"phone":               "Telefone",
	"role":                "Perfil",
	"password":            "Senha",
	"password_confirm":    "Confirmar senha",
	"password_keep":       "Deixe em branco para manter a senha atual",
	"document_number":     "CPF/CNPJ",
	"company_name":        "Razão social",
	"address":             "Endereço",
	"postal_code":         "CEP",
	"contact_person":      "Contato",
	"number":              "Número",
	"neighborhood":        "Bairro",
	"city":                "Cidade",
	"state":               "UF",
	"registration_status": "Situação cadastral",
	"branch_type":         "Tipo",
	"description":         "Descrição",
	"purchase_price":      "Preço de compra",
	"sale_price":          "Preço de venda",
	"category":            "Categoria",
	"stock_quantity":      "Estoque",
	"barcode":             "Código de barras",
	"budget_number":       "Número",
	"customer_name":       "Cliente",
	"supplier_name":       "Fornecedor",
	"issue_date":          "Emissão",
	"due_date":            "Vencimento",
	"payment_date":        "Pagamento",
	"receipt_date":        "Recebimento",
	"discount":            "Desconto (R$)",
	"tax":                 "Acréscimo (%)",
	"subtotal":            "Subtotal",
	"total":               "Total",
	"items":               "Itens",
	"quantity":            "Qtd.",
	"unit_price":          "Valor unitário",
	"amount":              "Valor",
	"overdue":             "Vencida",

	// page titles
	"users_title":       "Usuários",
	"customers_title":   "Clientes",
	"suppliers_title":   "Fornecedores",
	"products_title":    "Produtos",
	"budgets_title":     "Orçamentos",
	"payables_title":    "Contas a pagar",
	"receivables_title": "Contas a receber",
	"new_user":          "Novo usuário",
	"new_customer":      "Novo cliente",
	"new_supplier":      "Novo fornecedor",
	"new_product":       "Novo produto",
	"new_budget":        "Novo orçamento",
	"new_payable":       "Nova conta a pagar",
	"new_receivable":    "Nova conta a receber",

	// dashboard
	"dashboard_title":    "Dashboard",
	"dashboard_subtitle": "Visão geral do sistema - Depósito do Pitty",
	"welcome":            "Bem-vindo, %s",
	"pending_total":      "Pendente",
	"overdue_total":      "Em atraso",
	"settled_total":      "Liquidado",
	"quick_actions":      "Ações rápidas",
	"open":               "Acessar",

	// auth
	"login_title":       "Entrar",
	"login_submit":      "Entrar",
	"login_failed":      "Credenciais inválidas.",
	"login_unavailable": "Não foi possível autenticar. Verifique a URL da API e se ela está em execução.",
	"login_success":     "Login realizado com sucesso!",
	"no_account":        "Não tem conta? Cadastre-se",
	"register_title":    "Criar conta",
	"register_submit":   "Cadastrar",
	"register_success":  "Conta criada com sucesso. Agora faça login para acessar a plataforma.",
	"register_failed":   "Não foi possível cadastrar. Verifique a API e tente novamente.",
	"have_account":      "Já tem conta? Entrar",
	"logout_success":    "Logout realizado com sucesso",
	"session_expired":   "Sua sessão expirou. Faça login novamente.",
	"email_taken":       "Já existe uma conta com este e-mail.",

	// flash
	"created":       "Registro criado com sucesso.",
	"updated":       "Registro atualizado com sucesso.",
	"deleted":       "Registro excluído com sucesso.",
	"load_failed":   "Não foi possível carregar os dados.",
	"save_failed":   "Não foi possível salvar o registro.",
	"delete_failed": "Não foi possível excluir o registro.",
	"not_found":     "Registro não encontrado.",

	// validation codes
	"required":              "Campo obrigatório",
	"invalid_email":         "E-mail inválido",
	"too_short":             "Muito curto",
	"mismatch":              "As senhas não conferem",
	"must_be_positive":      "Deve ser maior que zero",
	"must_not_be_negative":  "Não pode ser negativo",
	"out_of_range":          "Fora do intervalo permitido",
	"invalid_document":      "CPF/CNPJ inválido",
	"invalid_number":        "Número inválido",
	"invalid_date":          "Data inválida",
	"payment_date_required": "Informe a data de pagamento",
	"items_required":        "Adicione ao menos um item",

	// statuses and roles
	"PENDENTE": "Pendente",
	"PAGA":     "Paga",
	"ATRASADA": "Atrasada",
	"RECEBIDO": "Recebido",
	"ATRASADO": "Atrasado",
	"ATIVO":    "Ativo",
	"INATIVO":  "Inativo",
	"role_0":   "Administrador",
	"role_1":   "Usuário",
}

var en = map[string]string{
	"tagline":         "Depósito do Pit management system",
	"nav_users":       "Users",
	"nav_customers":   "Customers",
	"nav_suppliers":   "Suppliers",
	"nav_products":    "Products",
	"nav_budgets":     "Quotes",
	"nav_payables":    "Accounts payable",
	"nav_receivables": "Accounts receivable",
	"logout":          "Sign out",

	"new":         "New",
	"edit":        "Edit",
	"delete":      "Delete",
	"save":        "Save",
	"cancel":      "Cancel",
	"search":      "Search",
	"actions":     "Actions",
	"confirm_del": "Are you sure you want to delete this record?",
	"no_records":  "No records found.",
	"active":      "Active",
	"inactive":    "Inactive",
	"yes":         "Yes",
	"no":          "No",
	"created_at":  "Created",
	"add_item":    "Add item",
	"remove_item": "Remove",
	"fix_errors":  "Please fix the highlighted fields.",
	"optional":    "optional",

	"per_page": "Items per page",
	"first":    "First",
	"prev":     "Previous",
	"next":     "Next",
	"last":     "Last",
	"page_of":  "Page %d of %d",
	"showing":  "Showing %d to %d of %d",

	"name":                "Name",
	"email":               "E-mail",
	"phone":               "Phone",
	"role":                "Role",
	"password":            "Password",
	"password_confirm":    "Confirm password",
	"password_keep":       "Leave blank to keep the current password",
	"document_number":     "Tax ID",
	"company_name":        "Company name",
	"address":             "Address",
	"postal_code":         "Postal code",
	"contact_person":      "Contact",
	"number":              "Number",
	"neighborhood":        "District",
	"city":                "City",
	"state":               "State",
	"registration_status": "Registration status",
	"branch_type":         "Branch type",
	"description":         "Description",
	"purchase_price":      "Purchase price",
	"sale_price":          "Sale price",
	"category":            "Category",
	"stock_quantity":      "Stock",
	"barcode":             "Barcode",
	"budget_number":       "Number",
	"customer_name":       "Customer",
	"supplier_name":       "Supplier",
	"issue_date":          "Issued",
	"due_date":            "Due date",
	"payment_date":        "Paid on",
	"receipt_date":        "Received on",
	"discount":            "Discount (R$)",
	"tax":                 "Surcharge (%)",
	"quantity":            "Qty",
	"unit_price":          "Unit price",
	"amount":              "Amount",
	"overdue":             "Overdue",

	"users_title":       "Users",
	"customers_title":   "Customers",
	"suppliers_title":   "Suppliers",
	"products_title":    "Products",
	"budgets_title":     "Quotes",
	"payables_title":    "Accounts payable",
	"receivables_title": "Accounts receivable",
	"new_user":          "New user",
	"new_customer":      "New customer",
	"new_supplier":      "New supplier",
	"new_product":       "New product",
	"new_budget":        "New quote",
	"new_payable":       "New payable",
	"new_receivable":    "New receivable",

	"dashboard_subtitle": "System overview - Depósito do Pitty",
	"welcome":            "Welcome, %s",
	"pending_total":      "Pending",
	"overdue_total":      "Overdue",
	"settled_total":      "Settled",
	"quick_actions":      "Quick actions",
	"open":               "Open",

	"login_title":       "Sign in",
	"login_submit":      "Sign in",
	"login_failed":      "Invalid credentials.",
	"login_unavailable": "Could not authenticate. Check the API URL and that the API is running.",
	"login_success":     "Signed in successfully!",
	"no_account":        "No account yet? Sign up",
	"register_title":    "Create account",
	"register_submit":   "Sign up",
	"register_success":  "Account created. Sign in to access the platform.",
	"register_failed":   "Could not sign up. Check the API and try again.",
	"have_account":      "Already have an account? Sign in",
	"logout_success":    "Signed out",
	"session_expired":   "Your session expired. Please sign in again.",
	"email_taken":       "An account with this e-mail already exists.",

	"created":       "Record created.",
	"updated":       "Record updated.",
	"deleted":       "Record deleted.",
	"load_failed":   "Could not load data.",
	"save_failed":   "Could not save the record.",
	"delete_failed": "Could not delete the record.",
	"not_found":     "Record not found.",

	"required":              "Required",
	"invalid_email":         "Invalid e-mail",
	"too_short":             "Too short",
	"mismatch":              "Passwords do not match",
	"must_be_positive":      "Must be greater than zero",
	"must_not_be_negative":  "Must not be negative",
	"out_of_range":          "Out of range",
	"invalid_document":      "Invalid tax ID",
	"invalid_number":        "Invalid number",
	"invalid_date":          "Invalid date",
	"payment_date_required": "Payment date is required",
	"items_required":        "Add at least one item",

	"PENDENTE": "Pending",
	"PAGA":     "Paid",
	"ATRASADA": "Overdue",
	"RECEBIDO": "Received",
	"ATRASADO": "Overdue",
	"ATIVO":    "Active",
	"INATIVO":  "Inactive",
	"role_0":   "Administrator",
	"role_1":   "User",
}
