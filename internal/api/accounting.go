package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const AccountingServiceName = "bank.Accounting"

// AccountingServer methods act on the account of the caller's session.
type AccountingServer interface {
	Deposit(context.Context, *DepositRequest) (*OperationResponse, error)
	Withdraw(context.Context, *WithdrawRequest) (*OperationResponse, error)
	GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error)
	GetHistory(context.Context, *GetHistoryRequest) (*HistoryResponse, error)
	SearchHistory(context.Context, *SearchHistoryRequest) (*HistoryResponse, error)
	CloseAccount(context.Context, *CloseAccountRequest) (*CloseAccountResponse, error)
}

type UnimplementedAccountingServer struct{}

func (UnimplementedAccountingServer) Deposit(context.Context, *DepositRequest) (*OperationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Deposit not implemented")
}

func (UnimplementedAccountingServer) Withdraw(context.Context, *WithdrawRequest) (*OperationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Withdraw not implemented")
}

func (UnimplementedAccountingServer) GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBalance not implemented")
}

func (UnimplementedAccountingServer) GetHistory(context.Context, *GetHistoryRequest) (*HistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetHistory not implemented")
}

func (UnimplementedAccountingServer) SearchHistory(context.Context, *SearchHistoryRequest) (*HistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchHistory not implemented")
}

func (UnimplementedAccountingServer) CloseAccount(context.Context, *CloseAccountRequest) (*CloseAccountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CloseAccount not implemented")
}

var AccountingServiceDesc = grpc.ServiceDesc{
	ServiceName: AccountingServiceName,
	HandlerType: (*AccountingServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(AccountingServiceName, "Deposit", AccountingServer.Deposit),
		unaryMethod(AccountingServiceName, "Withdraw", AccountingServer.Withdraw),
		unaryMethod(AccountingServiceName, "GetBalance", AccountingServer.GetBalance),
		unaryMethod(AccountingServiceName, "GetHistory", AccountingServer.GetHistory),
		unaryMethod(AccountingServiceName, "SearchHistory", AccountingServer.SearchHistory),
		unaryMethod(AccountingServiceName, "CloseAccount", AccountingServer.CloseAccount),
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterAccountingServer(s grpc.ServiceRegistrar, srv AccountingServer) {
	s.RegisterService(&AccountingServiceDesc, srv)
}

type AccountingClient struct {
	cc grpc.ClientConnInterface
}

func NewAccountingClient(cc grpc.ClientConnInterface) *AccountingClient {
	return &AccountingClient{cc: cc}
}

func (c *AccountingClient) Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*OperationResponse, error) {
	return invoke[OperationResponse](ctx, c.cc, fullMethod(AccountingServiceName, "Deposit"), in, opts)
}

func (c *AccountingClient) Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*OperationResponse, error) {
	return invoke[OperationResponse](ctx, c.cc, fullMethod(AccountingServiceName, "Withdraw"), in, opts)
}

func (c *AccountingClient) GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error) {
	return invoke[GetBalanceResponse](ctx, c.cc, fullMethod(AccountingServiceName, "GetBalance"), in, opts)
}

func (c *AccountingClient) GetHistory(ctx context.Context, in *GetHistoryRequest, opts ...grpc.CallOption) (*HistoryResponse, error) {
	return invoke[HistoryResponse](ctx, c.cc, fullMethod(AccountingServiceName, "GetHistory"), in, opts)
}

func (c *AccountingClient) SearchHistory(ctx context.Context, in *SearchHistoryRequest, opts ...grpc.CallOption) (*HistoryResponse, error) {
	return invoke[HistoryResponse](ctx, c.cc, fullMethod(AccountingServiceName, "SearchHistory"), in, opts)
}

func (c *AccountingClient) CloseAccount(ctx context.Context, in *CloseAccountRequest, opts ...grpc.CallOption) (*CloseAccountResponse, error) {
	return invoke[CloseAccountResponse](ctx, c.cc, fullMethod(AccountingServiceName, "CloseAccount"), in, opts)
}
