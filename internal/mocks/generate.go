package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name BonusDataProvider --dir ../usecase --output usecase --outpkg usecasemock --filename bonus_data_provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name SessionManager --dir ../usecase --output usecase --outpkg usecasemock --filename session_manager_mock.go
