package domain

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region InvalidQuantityError

type InvalidQuantityError struct {
	Msg string
}

func (e *InvalidQuantityError) Error() string {
	return e.Msg
}

func (e *InvalidQuantityError) Is(target error) bool {
	_, ok := target.(*InvalidQuantityError)
	return ok
}

//endregion

//region InsufficientStockError

type InsufficientStockError struct {
	Msg string
}

func (e *InsufficientStockError) Error() string {
	return e.Msg
}

func (e *InsufficientStockError) Is(target error) bool {
	_, ok := target.(*InsufficientStockError)
	return ok
}

//endregion

//region PriceMismatchError

type PriceMismatchError struct {
	Msg string
}

func (e *PriceMismatchError) Error() string {
	return e.Msg
}

func (e *PriceMismatchError) Is(target error) bool {
	_, ok := target.(*PriceMismatchError)
	return ok
}

//endregion

//region CropNotFoundError

type CropNotFoundError struct {
	Msg string
}

func (e *CropNotFoundError) Error() string {
	return e.Msg
}

func (e *CropNotFoundError) Is(target error) bool {
	_, ok := target.(*CropNotFoundError)
	return ok
}

//endregion

//region FarmerNotFoundError

type FarmerNotFoundError struct {
	Msg string
}

func (e *FarmerNotFoundError) Error() string {
	return e.Msg
}

func (e *FarmerNotFoundError) Is(target error) bool {
	_, ok := target.(*FarmerNotFoundError)
	return ok
}

//endregion

//region BuyerNotFoundError

type BuyerNotFoundError struct {
	Msg string
}

func (e *BuyerNotFoundError) Error() string {
	return e.Msg
}

func (e *BuyerNotFoundError) Is(target error) bool {
	_, ok := target.(*BuyerNotFoundError)
	return ok
}

//endregion

//region EntityInUseError

type EntityInUseError struct {
	Msg string
}

func (e *EntityInUseError) Error() string {
	return e.Msg
}

func (e *EntityInUseError) Is(target error) bool {
	_, ok := target.(*EntityInUseError)
	return ok
}

//endregion
