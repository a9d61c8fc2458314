package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"teamlab/internal/model"
)

type VirtualMachineRepository interface {
	Create(ctx context.Context, vm *model.VirtualMachine) error
	Update(ctx context.Context, vm *model.VirtualMachine) error
	Delete(ctx context.Context, id int64) error
	DeleteByTeamID(ctx context.Context, teamId int64) error
	GetByID(ctx context.Context, id int64) (*model.VirtualMachine, error)
	GetByTeamAndName(ctx context.Context, teamId int64, name string) (*model.VirtualMachine, error)
	ListByTeamID(ctx context.Context, teamId int64) ([]*model.VirtualMachine, error)
	ListByOwner(ctx context.Context, studentId string) ([]*model.VirtualMachine, error)

	AddOwners(ctx context.Context, owners []*model.VMOwner) error
	IsOwner(ctx context.Context, vmId int64, studentId string) (bool, error)
	ListOwners(ctx context.Context, vmId int64) ([]*model.VMOwner, error)
	DeleteOwnersByVM(ctx context.Context, vmId int64) error
	DeleteOwnersByTeamID(ctx context.Context, teamId int64) error
}

func NewVirtualMachineRepository(r *Repository) VirtualMachineRepository {
	return &virtualMachineRepository{Repository: r}
}

type virtualMachineRepository struct {
	*Repository
}

func (r *virtualMachineRepository) Create(ctx context.Context, vm *model.VirtualMachine) error {
	return r.DB(ctx).Create(vm).Error
}

func (r *virtualMachineRepository) Update(ctx context.Context, vm *model.VirtualMachine) error {
	return r.DB(ctx).Save(vm).Error
}

func (r *virtualMachineRepository) Delete(ctx context.Context, id int64) error {
	return r.DB(ctx).Where("id = ?", id).Delete(&model.VirtualMachine{}).Error
}

func (r *virtualMachineRepository) DeleteByTeamID(ctx context.Context, teamId int64) error {
	return r.DB(ctx).Where("team_id = ?", teamId).Delete(&model.VirtualMachine{}).Error
}

func (r *virtualMachineRepository) GetByID(ctx context.Context, id int64) (*model.VirtualMachine, error) {
	var vm model.VirtualMachine
	if err := r.DB(ctx).Where("id = ?", id).First(&vm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vm, nil
}

func (r *virtualMachineRepository) GetByTeamAndName(ctx context.Context, teamId int64, name string) (*model.VirtualMachine, error) {
	var vm model.VirtualMachine
	if err := r.DB(ctx).Where("team_id = ? AND name = ?", teamId, name).First(&vm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vm, nil
}

func (r *virtualMachineRepository) ListByTeamID(ctx context.Context, teamId int64) ([]*model.VirtualMachine, error) {
	var vms []*model.VirtualMachine
	if err := r.DB(ctx).Where("team_id = ?", teamId).Find(&vms).Error; err != nil {
		return nil, err
	}
	return vms, nil
}

func (r *virtualMachineRepository) ListByOwner(ctx context.Context, studentId string) ([]*model.VirtualMachine, error) {
	var vms []*model.VirtualMachine
	err := r.DB(ctx).
		Table("virtual_machine").
		Select("virtual_machine.*").
		Joins("JOIN vm_owner ON vm_owner.vm_id = virtual_machine.id").
		Where("vm_owner.student_id = ?", studentId).
		Find(&vms).Error
	if err != nil {
		return nil, err
	}
	return vms, nil
}

func (r *virtualMachineRepository) AddOwners(ctx context.Context, owners []*model.VMOwner) error {
	return r.DB(ctx).Create(owners).Error
}

func (r *virtualMachineRepository) IsOwner(ctx context.Context, vmId int64, studentId string) (bool, error) {
	var count int64
	err := r.DB(ctx).Model(&model.VMOwner{}).
		Where("vm_id = ? AND student_id = ?", vmId, studentId).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *virtualMachineRepository) ListOwners(ctx context.Context, vmId int64) ([]*model.VMOwner, error) {
	var owners []*model.VMOwner
	if err := r.DB(ctx).Where("vm_id = ?", vmId).Find(&owners).Error; err != nil {
		return nil, err
	}
	return owners, nil
}

func (r *virtualMachineRepository) DeleteOwnersByVM(ctx context.Context, vmId int64) error {
	return r.DB(ctx).Where("vm_id = ?", vmId).Delete(&model.VMOwner{}).Error
}

func (r *virtualMachineRepository) DeleteOwnersByTeamID(ctx context.Context, teamId int64) error {
	return r.DB(ctx).Where("team_id = ?", teamId).Delete(&model.VMOwner{}).Error
}
